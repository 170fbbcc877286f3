package request

import "github.com/google/uuid"

// InvoiceItemRequest represents one invoice line. Price defaults to the
// product's selling price when omitted.
type InvoiceItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Price     *float64  `json:"price" binding:"omitempty,min=0"`
}

// CreateInvoiceRequest represents an invoice creation request
type CreateInvoiceRequest struct {
	CompanyID uuid.UUID            `json:"company_id" binding:"required"`
	Items     []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateInvoiceRequest represents an invoice update request. The merge is
// applied as-is by the ledger.
type UpdateInvoiceRequest struct {
	Status          *string  `json:"status"`
	TotalAmount     *float64 `json:"total_amount"`
	PaidAmount      *float64 `json:"paid_amount"`
	RemainingAmount *float64 `json:"remaining_amount"`
}

// AddPaymentRequest represents a payment applied to an invoice
type AddPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// InvoiceFilterRequest represents invoice filter parameters
type InvoiceFilterRequest struct {
	Status  string `form:"status"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
