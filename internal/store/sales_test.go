package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfarouk/marketpro-api/internal/domain/entity"
)

func TestAddSaleComputesChange(t *testing.T) {
	s, _ := newTestStore(t)

	sale := s.AddSale(AddSaleInput{TotalAmount: 37.5, ReceivedAmount: 50})
	assert.Equal(t, 12.5, sale.ChangeAmount)

	exact := s.AddSale(AddSaleInput{TotalAmount: 20, ReceivedAmount: 20})
	assert.Equal(t, 0.0, exact.ChangeAmount)

	// Underpayment never yields negative change.
	short := s.AddSale(AddSaleInput{TotalAmount: 20, ReceivedAmount: 15})
	assert.Equal(t, 0.0, short.ChangeAmount)
}

func TestAddSaleDecrementsStock(t *testing.T) {
	s, _ := newTestStore(t)
	company := s.AddCompany("Al Nour Trading")
	product := s.AddProduct(AddProductInput{Name: "Olive Oil 1L", Stock: 20, CompanyID: company.ID})
	require.NotNil(t, product)

	s.AddSale(AddSaleInput{
		Items: []entity.SaleItem{{
			ProductID: product.ID,
			Quantity:  3,
			Price:     10,
			Total:     30,
		}},
		TotalAmount:    30,
		ReceivedAmount: 30,
	})

	assert.Equal(t, 17, s.GetStock(product.ID))
}

func TestAddSaleClampsStockAtZero(t *testing.T) {
	s, _ := newTestStore(t)
	company := s.AddCompany("Al Nour Trading")
	product := s.AddProduct(AddProductInput{Name: "Olive Oil 1L", Stock: 5, CompanyID: company.ID})
	require.NotNil(t, product)

	s.AddSale(AddSaleInput{
		Items:          []entity.SaleItem{{ProductID: product.ID, Quantity: 10, Price: 10, Total: 100}},
		TotalAmount:    100,
		ReceivedAmount: 100,
	})

	assert.Equal(t, 0, s.GetStock(product.ID))
}

func TestSalesByDateRangeIsInclusive(t *testing.T) {
	s, now := newTestStore(t)

	*now = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	early := s.AddSale(AddSaleInput{TotalAmount: 10, ReceivedAmount: 10})

	*now = time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC)
	middle := s.AddSale(AddSaleInput{TotalAmount: 20, ReceivedAmount: 20})

	*now = time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)
	late := s.AddSale(AddSaleInput{TotalAmount: 30, ReceivedAmount: 30})

	got := s.SalesByDateRange(
		time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC),
	)
	require.Len(t, got, 2)
	assert.Equal(t, early.ID, got[0].ID)
	assert.Equal(t, middle.ID, got[1].ID)

	all := s.SalesByDateRange(time.Time{}, time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC))
	require.Len(t, all, 3)
	assert.Equal(t, late.ID, all[2].ID)
}

func TestGetSale(t *testing.T) {
	s, _ := newTestStore(t)
	sale := s.AddSale(AddSaleInput{TotalAmount: 10, ReceivedAmount: 10, CreatedBy: "General Manager"})

	got := s.GetSale(sale.ID)
	require.NotNil(t, got)
	assert.Equal(t, "General Manager", got.CreatedBy)
}
