package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mfarouk/marketpro-api/internal/domain/enum"
)

// Notification represents an entry in the back-office notifications panel.
// Low-stock notifications carry snapshots of the affected products; the
// snapshot product ids are what the deduplication rule matches on.
type Notification struct {
	ID          uuid.UUID             `json:"id"`
	Type        enum.NotificationType `json:"type"`
	Title       string                `json:"title"`
	Message     string                `json:"message"`
	CompanyID   *uuid.UUID            `json:"company_id,omitempty"`
	CompanyName string                `json:"company_name,omitempty"`
	Products    []Product             `json:"products,omitempty"`
	Read        bool                  `json:"read"`
	CreatedAt   time.Time             `json:"created_at"`
}

// References reports whether the notification's product snapshots include
// the given product id.
func (n *Notification) References(productID uuid.UUID) bool {
	for _, p := range n.Products {
		if p.ID == productID {
			return true
		}
	}
	return false
}
