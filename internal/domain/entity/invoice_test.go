package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mfarouk/marketpro-api/internal/domain/enum"
)

func TestRecalculateWithoutPayments(t *testing.T) {
	inv := Invoice{TotalAmount: 100, Status: enum.InvoiceStatusPending}
	inv.Recalculate()

	assert.Equal(t, 0.0, inv.PaidAmount)
	assert.Equal(t, 100.0, inv.RemainingAmount)
	assert.Equal(t, enum.InvoiceStatusPending, inv.Status)
}

func TestRecalculatePartialPayment(t *testing.T) {
	inv := Invoice{
		TotalAmount: 100,
		Status:      enum.InvoiceStatusPending,
		Payments:    []Payment{{Amount: 30}, {Amount: 20}},
	}
	inv.Recalculate()

	assert.Equal(t, 50.0, inv.PaidAmount)
	assert.Equal(t, 50.0, inv.RemainingAmount)
	assert.Equal(t, enum.InvoiceStatusPartial, inv.Status)
}

func TestRecalculateFullPayment(t *testing.T) {
	inv := Invoice{
		TotalAmount: 100,
		Status:      enum.InvoiceStatusPartial,
		Payments:    []Payment{{Amount: 60}, {Amount: 40}},
	}
	inv.Recalculate()

	assert.Equal(t, 0.0, inv.RemainingAmount)
	assert.Equal(t, enum.InvoiceStatusPaid, inv.Status)
}

func TestRecalculateOverpayment(t *testing.T) {
	inv := Invoice{
		TotalAmount: 100,
		Status:      enum.InvoiceStatusPending,
		Payments:    []Payment{{Amount: 130}},
	}
	inv.Recalculate()

	assert.Equal(t, -30.0, inv.RemainingAmount)
	assert.Equal(t, enum.InvoiceStatusPaid, inv.Status)
}
