package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mfarouk/marketpro-api/internal/domain/entity"
	"github.com/mfarouk/marketpro-api/internal/domain/enum"
	"github.com/mfarouk/marketpro-api/internal/storage"
)

// AddInvoiceInput represents an invoice draft. The status is chosen by the
// caller, not derived.
type AddInvoiceInput struct {
	CompanyID       uuid.UUID
	CompanyCode     string
	CompanyName     string
	Items           []entity.InvoiceItem
	TotalAmount     float64
	PaidAmount      float64
	RemainingAmount float64
	Payments        []entity.Payment
	Status          enum.InvoiceStatus
	CreatedBy       string
}

// AddInvoice appends an invoice with the next invoice number. Numbering is
// strictly increasing: one past the highest existing number, seeded at 1000
// when the ledger is empty.
func (s *Store) AddInvoice(input AddInvoiceInput) entity.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	last := 999
	for _, inv := range s.invoices {
		if inv.InvoiceNumber > last {
			last = inv.InvoiceNumber
		}
	}

	payments := input.Payments
	if payments == nil {
		payments = []entity.Payment{}
	}

	invoice := entity.Invoice{
		ID:              uuid.New(),
		InvoiceNumber:   last + 1,
		CompanyID:       input.CompanyID,
		CompanyCode:     input.CompanyCode,
		CompanyName:     input.CompanyName,
		Items:           input.Items,
		TotalAmount:     input.TotalAmount,
		PaidAmount:      input.PaidAmount,
		RemainingAmount: input.RemainingAmount,
		Payments:        payments,
		Status:          input.Status,
		CreatedAt:       s.now(),
		CreatedBy:       input.CreatedBy,
	}
	s.invoices = append(s.invoices, invoice)
	s.persist(storage.KeyInvoices, s.invoices)

	companyID := invoice.CompanyID
	s.addNotificationLocked(AddNotificationInput{
		Type:        enum.NotificationTypeOrder,
		Title:       "New order",
		Message:     fmt.Sprintf("Invoice #%d for %s was created", invoice.InvoiceNumber, invoice.CompanyName),
		CompanyID:   &companyID,
		CompanyName: invoice.CompanyName,
	})

	return invoice
}

// UpdateInvoiceInput represents a partial invoice update. The merge is
// unconditional; no field-level validation is applied.
type UpdateInvoiceInput struct {
	Items           []entity.InvoiceItem
	TotalAmount     *float64
	PaidAmount      *float64
	RemainingAmount *float64
	Status          *enum.InvoiceStatus
	DeliveredAt     *time.Time
	CreatedBy       *string
}

// UpdateInvoice merges the input into the invoice. Unknown ids are a no-op.
func (s *Store) UpdateInvoice(id uuid.UUID, input UpdateInvoiceInput) *entity.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx := range s.invoices {
		if s.invoices[idx].ID != id {
			continue
		}
		inv := &s.invoices[idx]
		if input.Items != nil {
			inv.Items = input.Items
		}
		if input.TotalAmount != nil {
			inv.TotalAmount = *input.TotalAmount
		}
		if input.PaidAmount != nil {
			inv.PaidAmount = *input.PaidAmount
		}
		if input.RemainingAmount != nil {
			inv.RemainingAmount = *input.RemainingAmount
		}
		if input.Status != nil {
			inv.Status = *input.Status
		}
		if input.DeliveredAt != nil {
			inv.DeliveredAt = input.DeliveredAt
		}
		if input.CreatedBy != nil {
			inv.CreatedBy = *input.CreatedBy
		}
		s.persist(storage.KeyInvoices, s.invoices)
		invoice := *inv
		return &invoice
	}
	return nil
}

// AddPayment appends a payment to the invoice and re-derives the paid and
// remaining amounts and the status. An unknown invoice id is a silent no-op.
// The amount is not validated: payments may overshoot the total, in which
// case the remaining amount goes negative and the status stays paid.
func (s *Store) AddPayment(invoiceID uuid.UUID, amount float64) *entity.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx := range s.invoices {
		if s.invoices[idx].ID != invoiceID {
			continue
		}
		inv := &s.invoices[idx]
		inv.Payments = append(inv.Payments, entity.Payment{
			ID:     uuid.New(),
			Amount: amount,
			Date:   s.now(),
		})
		inv.Recalculate()
		s.persist(storage.KeyInvoices, s.invoices)

		companyID := inv.CompanyID
		s.addNotificationLocked(AddNotificationInput{
			Type:        enum.NotificationTypePayment,
			Title:       "Payment received",
			Message:     fmt.Sprintf("Payment of %.2f recorded on invoice #%d", amount, inv.InvoiceNumber),
			CompanyID:   &companyID,
			CompanyName: inv.CompanyName,
		})

		invoice := *inv
		return &invoice
	}
	return nil
}

// MarkDelivered confirms delivery of a pending invoice: every line item's
// quantity is added back into stock (running the low-stock scan as it goes),
// the invoice becomes partial when anything was already paid and delivered
// otherwise, and the delivery timestamp is recorded. Non-pending invoices
// and unknown ids are a no-op.
func (s *Store) MarkDelivered(invoiceID uuid.UUID) *entity.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx := range s.invoices {
		if s.invoices[idx].ID != invoiceID {
			continue
		}
		inv := &s.invoices[idx]
		if inv.Status != enum.InvoiceStatusPending {
			return nil
		}

		for _, item := range inv.Items {
			if p := s.findProductLocked(item.ProductID); p != nil {
				s.updateStockLocked(p.ID, p.Stock+item.Quantity)
			}
		}

		now := s.now()
		inv.DeliveredAt = &now
		if inv.PaidAmount > 0 {
			inv.Status = enum.InvoiceStatusPartial
		} else {
			inv.Status = enum.InvoiceStatusDelivered
		}
		s.persist(storage.KeyInvoices, s.invoices)
		invoice := *inv
		return &invoice
	}
	return nil
}

// Invoices returns a snapshot of the invoice ledger
func (s *Store) Invoices() []entity.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Invoice, len(s.invoices))
	copy(out, s.invoices)
	return out
}

// GetInvoice returns the invoice with the given id, or nil
func (s *Store) GetInvoice(id uuid.UUID) *entity.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.invoices {
		if inv.ID == id {
			invoice := inv
			return &invoice
		}
	}
	return nil
}
