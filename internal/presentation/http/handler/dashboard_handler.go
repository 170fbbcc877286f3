package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mfarouk/marketpro-api/internal/domain/entity"
	"github.com/mfarouk/marketpro-api/internal/domain/enum"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/dto/response"
	"github.com/mfarouk/marketpro-api/internal/store"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	store *store.Store
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(s *store.Store) *DashboardHandler {
	return &DashboardHandler{store: s}
}

// DashboardStats aggregates the figures shown on the landing screen
type DashboardStats struct {
	Companies           int     `json:"companies"`
	Products            int     `json:"products"`
	PendingOrders       int     `json:"pending_orders"`
	LowStockProducts    int     `json:"low_stock_products"`
	UnreadNotifications int     `json:"unread_notifications"`
	TodaySalesCount     int     `json:"today_sales_count"`
	TodaySalesTotal     float64 `json:"today_sales_total"`
	OutstandingAmount   float64 `json:"outstanding_amount"`
}

// Stats handles computing the dashboard figures
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats := DashboardStats{
		Companies:        len(h.store.Companies()),
		Products:         len(h.store.Products()),
		LowStockProducts: len(h.store.LowStockProducts()),
	}

	for _, inv := range h.store.Invoices() {
		if inv.Status == enum.InvoiceStatusPending {
			stats.PendingOrders++
		}
		if inv.RemainingAmount > 0 {
			stats.OutstandingAmount += inv.RemainingAmount
		}
	}
	stats.OutstandingAmount = entity.Round2(stats.OutstandingAmount)

	for _, n := range h.store.Notifications() {
		if !n.Read {
			stats.UnreadNotifications++
		}
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, sale := range h.store.SalesByDateRange(dayStart, now) {
		stats.TodaySalesCount++
		stats.TodaySalesTotal += sale.TotalAmount
	}
	stats.TodaySalesTotal = entity.Round2(stats.TodaySalesTotal)

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}
