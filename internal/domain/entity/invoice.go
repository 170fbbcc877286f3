package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mfarouk/marketpro-api/internal/domain/enum"
)

// Invoice represents a supplier invoice (purchase order) in the ledger
type Invoice struct {
	ID              uuid.UUID          `json:"id"`
	InvoiceNumber   int                `json:"invoice_number"`
	CompanyID       uuid.UUID          `json:"company_id"`
	CompanyCode     string             `json:"company_code"`
	CompanyName     string             `json:"company_name"`
	Items           []InvoiceItem      `json:"items"`
	TotalAmount     float64            `json:"total_amount"`
	PaidAmount      float64            `json:"paid_amount"`
	RemainingAmount float64            `json:"remaining_amount"`
	Payments        []Payment          `json:"payments"`
	Status          enum.InvoiceStatus `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	CreatedBy       string             `json:"created_by"`
	DeliveredAt     *time.Time         `json:"delivered_at,omitempty"`
}

// InvoiceItem is a product snapshot taken when the invoice was drafted.
// Stock records the product's stock level at creation time.
type InvoiceItem struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductCode string    `json:"product_code"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Total       float64   `json:"total"`
	Stock       int       `json:"stock"`
}

// Payment represents a single payment applied to an invoice; the payment
// list is append-only.
type Payment struct {
	ID     uuid.UUID `json:"id"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

// Recalculate re-derives the paid/remaining amounts and the payment-driven
// status from the payment list. paid_amount always equals the sum of the
// payments; status flips to paid once nothing remains, otherwise any payment
// marks the invoice partial.
func (i *Invoice) Recalculate() {
	var paid float64
	for _, p := range i.Payments {
		paid += p.Amount
	}
	i.PaidAmount = paid
	i.RemainingAmount = i.TotalAmount - paid
	if i.RemainingAmount <= 0 {
		i.Status = enum.InvoiceStatusPaid
	} else if len(i.Payments) > 0 {
		i.Status = enum.InvoiceStatusPartial
	}
}
