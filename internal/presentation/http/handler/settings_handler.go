package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/dto/request"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/dto/response"
	"github.com/mfarouk/marketpro-api/internal/store"
)

// SettingsHandler handles store settings HTTP requests
type SettingsHandler struct {
	store *store.Store
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(s *store.Store) *SettingsHandler {
	return &SettingsHandler{store: s}
}

// Get handles getting the store settings
func (h *SettingsHandler) Get(c *gin.Context) {
	response.OK(c, "Settings retrieved successfully", h.store.Settings())
}

// Update handles updating the store settings. A profit margin change only
// affects products priced after the change.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings := h.store.UpdateSettings(store.UpdateSettingsInput{
		AppName:           req.AppName,
		ProfitMargin:      req.ProfitMargin,
		LowStockThreshold: req.LowStockThreshold,
		SidebarLabels:     req.SidebarLabels,
	})
	response.OK(c, "Settings updated successfully", settings)
}
