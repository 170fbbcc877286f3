package store

import (
	"github.com/google/uuid"
	"github.com/mfarouk/marketpro-api/internal/domain/entity"
	"github.com/mfarouk/marketpro-api/internal/storage"
)

// GetStock returns the stock level of a product, 0 for unknown ids
func (s *Store) GetStock(productID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p := s.findProductLocked(productID); p != nil {
		return p.Stock
	}
	return 0
}

// UpdateStock sets the product's stock to max(0, quantity) and eagerly
// re-runs the low-stock scan. Unknown ids are a no-op.
func (s *Store) UpdateStock(productID uuid.UUID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateStockLocked(productID, quantity)
}

// LowStockProducts returns every product at or below its effective
// low-stock threshold.
func (s *Store) LowStockProducts() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.Product
	for _, p := range s.products {
		if p.Stock <= p.EffectiveThreshold(s.settings.LowStockThreshold) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) updateStockLocked(productID uuid.UUID, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	for idx := range s.products {
		if s.products[idx].ID == productID {
			s.products[idx].Stock = quantity
			break
		}
	}
	s.persist(storage.KeyProducts, s.products)
	s.checkLowStockLocked()
}
