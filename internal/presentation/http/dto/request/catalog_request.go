package request

import "github.com/google/uuid"

// CreateCompanyRequest represents a company creation request
type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// UpdateCompanyRequest represents a company update request
type UpdateCompanyRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=255"`
}

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	CompanyID         uuid.UUID `json:"company_id" binding:"required"`
	Name              string    `json:"name" binding:"required,min=1,max=255"`
	PriceBeforeTax    float64   `json:"price_before_tax" binding:"min=0"`
	PriceAfterTax     float64   `json:"price_after_tax" binding:"min=0"`
	OfferPrice        *float64  `json:"offer_price" binding:"omitempty,min=0"`
	Stock             int       `json:"stock" binding:"min=0"`
	LowStockThreshold int       `json:"low_stock_threshold" binding:"min=0"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name              *string  `json:"name" binding:"omitempty,min=1,max=255"`
	PriceBeforeTax    *float64 `json:"price_before_tax" binding:"omitempty,min=0"`
	PriceAfterTax     *float64 `json:"price_after_tax" binding:"omitempty,min=0"`
	OfferPrice        *float64 `json:"offer_price" binding:"omitempty,min=0"`
	Stock             *int     `json:"stock" binding:"omitempty,min=0"`
	LowStockThreshold *int     `json:"low_stock_threshold" binding:"omitempty,min=0"`
}

// UpdateStockRequest represents a stock level update
type UpdateStockRequest struct {
	Stock int `json:"stock"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search    string `form:"search"`
	CompanyID string `form:"company_id"`
	LowStock  bool   `form:"low_stock"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
