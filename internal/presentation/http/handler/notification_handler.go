package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/dto/response"
	"github.com/mfarouk/marketpro-api/internal/store"
)

// NotificationHandler handles notification panel HTTP requests
type NotificationHandler struct {
	store *store.Store
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(s *store.Store) *NotificationHandler {
	return &NotificationHandler{store: s}
}

// List handles listing notifications, newest first
func (h *NotificationHandler) List(c *gin.Context) {
	response.OK(c, "Notifications retrieved successfully", h.store.Notifications())
}

// MarkRead handles marking a notification as read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid notification ID")
		return
	}

	h.store.MarkNotificationRead(id)
	response.OK(c, "Notification marked as read", nil)
}

// CheckLowStock handles an on-demand low-stock scan across the catalog
func (h *NotificationHandler) CheckLowStock(c *gin.Context) {
	h.store.CheckLowStock()
	response.OK(c, "Low stock check completed", h.store.Notifications())
}
