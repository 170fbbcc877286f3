package entity

import (
	"time"

	"github.com/google/uuid"
)

// Sale represents a point-of-sale transaction
type Sale struct {
	ID             uuid.UUID  `json:"id"`
	Items          []SaleItem `json:"items"`
	TotalAmount    float64    `json:"total_amount"`
	ReceivedAmount float64    `json:"received_amount"`
	ChangeAmount   float64    `json:"change_amount"`
	CreatedAt      time.Time  `json:"created_at"`
	CreatedBy      string     `json:"created_by"`
}

// SaleItem is a product snapshot for a single sold line
type SaleItem struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductCode string    `json:"product_code"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Total       float64   `json:"total"`
}
