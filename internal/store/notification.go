package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mfarouk/marketpro-api/internal/domain/entity"
	"github.com/mfarouk/marketpro-api/internal/domain/enum"
	"github.com/mfarouk/marketpro-api/internal/storage"
)

// AddNotificationInput represents a notification to record
type AddNotificationInput struct {
	Type        enum.NotificationType
	Title       string
	Message     string
	CompanyID   *uuid.UUID
	CompanyName string
	Products    []entity.Product
}

// AddNotification prepends a notification so the panel shows newest first
func (s *Store) AddNotification(input AddNotificationInput) entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addNotificationLocked(input)
}

// MarkNotificationRead flips the read flag. Unknown ids are a no-op. A read
// low-stock notification no longer suppresses duplicates, so the next
// threshold breach for the same product retriggers.
func (s *Store) MarkNotificationRead(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx := range s.notifications {
		if s.notifications[idx].ID == id {
			s.notifications[idx].Read = true
			break
		}
	}
	s.persist(storage.KeyNotifications, s.notifications)
}

// Notifications returns a snapshot of the notification list, newest first
func (s *Store) Notifications() []entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// CheckLowStock scans every product against its effective threshold and
// records a low-stock notification for each breach, unless an unread
// low-stock notification already references that product.
func (s *Store) CheckLowStock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkLowStockLocked()
}

// The scan is re-evaluated eagerly on every stock mutation. It is
// O(products x notifications) per call, which both collections are small
// enough to afford.
func (s *Store) checkLowStockLocked() {
	for idx := range s.products {
		p := s.products[idx]
		if p.Stock > p.EffectiveThreshold(s.settings.LowStockThreshold) {
			continue
		}
		if s.hasUnreadLowStockLocked(p.ID) {
			continue
		}
		companyID := p.CompanyID
		s.addNotificationLocked(AddNotificationInput{
			Type:        enum.NotificationTypeLowStock,
			Title:       "Low stock alert",
			Message:     fmt.Sprintf("Product %s from %s reached its minimum stock level", p.Name, p.CompanyName),
			CompanyID:   &companyID,
			CompanyName: p.CompanyName,
			Products:    []entity.Product{p},
		})
	}
}

func (s *Store) hasUnreadLowStockLocked(productID uuid.UUID) bool {
	for idx := range s.notifications {
		n := &s.notifications[idx]
		if n.Type == enum.NotificationTypeLowStock && !n.Read && n.References(productID) {
			return true
		}
	}
	return false
}

func (s *Store) addNotificationLocked(input AddNotificationInput) entity.Notification {
	notification := entity.Notification{
		ID:          uuid.New(),
		Type:        input.Type,
		Title:       input.Title,
		Message:     input.Message,
		CompanyID:   input.CompanyID,
		CompanyName: input.CompanyName,
		Products:    input.Products,
		Read:        false,
		CreatedAt:   s.now(),
	}
	s.notifications = append([]entity.Notification{notification}, s.notifications...)
	s.persist(storage.KeyNotifications, s.notifications)
	return notification
}
