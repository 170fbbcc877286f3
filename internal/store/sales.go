package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/mfarouk/marketpro-api/internal/domain/entity"
	"github.com/mfarouk/marketpro-api/internal/storage"
)

// AddSaleInput represents a point-of-sale transaction draft
type AddSaleInput struct {
	Items          []entity.SaleItem
	TotalAmount    float64
	ReceivedAmount float64
	CreatedBy      string
}

// AddSale records the sale and then decrements stock for every line item,
// clamped at zero. Oversold quantities clamp silently rather than error, and
// there is no rollback: each item's stock is mutated independently.
func (s *Store) AddSale(input AddSaleInput) entity.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()

	change := input.ReceivedAmount - input.TotalAmount
	if change < 0 {
		change = 0
	}

	sale := entity.Sale{
		ID:             uuid.New(),
		Items:          input.Items,
		TotalAmount:    input.TotalAmount,
		ReceivedAmount: input.ReceivedAmount,
		ChangeAmount:   entity.Round2(change),
		CreatedAt:      s.now(),
		CreatedBy:      input.CreatedBy,
	}
	s.sales = append(s.sales, sale)
	s.persist(storage.KeySales, s.sales)

	for _, item := range input.Items {
		if p := s.findProductLocked(item.ProductID); p != nil {
			s.updateStockLocked(p.ID, p.Stock-item.Quantity)
		}
	}

	return sale
}

// Sales returns a snapshot of the sales ledger
func (s *Store) Sales() []entity.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

// SalesByDateRange returns the sales recorded between start and end,
// inclusive on both ends.
func (s *Store) SalesByDateRange(start, end time.Time) []entity.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.Sale
	for _, sale := range s.sales {
		if sale.CreatedAt.Before(start) || sale.CreatedAt.After(end) {
			continue
		}
		out = append(out, sale)
	}
	return out
}

// GetSale returns the sale with the given id, or nil
func (s *Store) GetSale(id uuid.UUID) *entity.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sale := range s.sales {
		if sale.ID == id {
			found := sale
			return &found
		}
	}
	return nil
}
