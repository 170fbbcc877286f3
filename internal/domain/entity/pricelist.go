package entity

import (
	"time"

	"github.com/google/uuid"
)

// PriceList is a per-company snapshot of products and prices, kept for the
// price-list screens
type PriceList struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"company_id"`
	CompanyName string    `json:"company_name"`
	Products    []Product `json:"products"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
