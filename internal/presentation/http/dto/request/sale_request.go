package request

import "github.com/google/uuid"

// SaleItemRequest represents one sold line. Price defaults to the product's
// offer price when set, otherwise its selling price.
type SaleItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Price     *float64  `json:"price" binding:"omitempty,min=0"`
}

// CreateSaleRequest represents a point-of-sale transaction request
type CreateSaleRequest struct {
	Items          []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	ReceivedAmount *float64          `json:"received_amount" binding:"omitempty,min=0"`
}

// SaleFilterRequest represents sales filter parameters
type SaleFilterRequest struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
