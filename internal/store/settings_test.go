package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	settings := s.Settings()
	assert.Equal(t, "Market Pro", settings.AppName)
	assert.Equal(t, 14.0, settings.ProfitMargin)
	assert.Equal(t, 10, settings.LowStockThreshold)
	assert.Equal(t, "Daily Sales", settings.SidebarLabels["daily_sales"])
}

func TestUpdateSettingsMerges(t *testing.T) {
	s, _ := newTestStore(t)

	name := "Corner Market"
	threshold := 5
	updated := s.UpdateSettings(UpdateSettingsInput{AppName: &name, LowStockThreshold: &threshold})

	assert.Equal(t, "Corner Market", updated.AppName)
	assert.Equal(t, 5, updated.LowStockThreshold)
	// Margin and labels keep their defaults.
	assert.Equal(t, 14.0, updated.ProfitMargin)
	assert.Equal(t, "Settings", updated.SidebarLabels["settings"])
}

func TestSettingsReturnsACopy(t *testing.T) {
	s, _ := newTestStore(t)

	settings := s.Settings()
	settings.SidebarLabels["settings"] = "tampered"

	assert.Equal(t, "Settings", s.Settings().SidebarLabels["settings"])
}

func TestSettingsPersistAcrossReload(t *testing.T) {
	kv := testKV(t)
	s, _ := newTestStoreOn(t, kv)

	margin := 25.0
	s.UpdateSettings(UpdateSettingsInput{ProfitMargin: &margin})

	reloaded, _ := newTestStoreOn(t, kv)
	require.Equal(t, 25.0, reloaded.Settings().ProfitMargin)
}
