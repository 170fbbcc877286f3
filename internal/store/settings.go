package store

import (
	"github.com/mfarouk/marketpro-api/internal/domain/entity"
	"github.com/mfarouk/marketpro-api/internal/storage"
)

// Settings returns a copy of the store-wide settings
func (s *Store) Settings() entity.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.settings
	labels := make(map[string]string, len(s.settings.SidebarLabels))
	for k, v := range s.settings.SidebarLabels {
		labels[k] = v
	}
	settings.SidebarLabels = labels
	return settings
}

// UpdateSettingsInput represents a partial settings update
type UpdateSettingsInput struct {
	AppName           *string
	ProfitMargin      *float64
	LowStockThreshold *int
	SidebarLabels     map[string]string
}

// UpdateSettings merges the input into the settings. A margin change only
// affects prices written afterwards; existing selling prices are untouched.
func (s *Store) UpdateSettings(input UpdateSettingsInput) entity.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.AppName != nil {
		s.settings.AppName = *input.AppName
	}
	if input.ProfitMargin != nil {
		s.settings.ProfitMargin = *input.ProfitMargin
	}
	if input.LowStockThreshold != nil {
		s.settings.LowStockThreshold = *input.LowStockThreshold
	}
	if input.SidebarLabels != nil {
		s.settings.SidebarLabels = input.SidebarLabels
	}
	s.persist(storage.KeySettings, s.settings)
	return s.settings
}
