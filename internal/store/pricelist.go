package store

import (
	"github.com/google/uuid"
	"github.com/mfarouk/marketpro-api/internal/domain/entity"
	"github.com/mfarouk/marketpro-api/internal/storage"
)

// AddPriceListInput represents a price list draft
type AddPriceListInput struct {
	CompanyID   uuid.UUID
	CompanyName string
	Products    []entity.Product
}

// AddPriceList appends a per-company price list snapshot
func (s *Store) AddPriceList(input AddPriceListInput) entity.PriceList {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	priceList := entity.PriceList{
		ID:          uuid.New(),
		CompanyID:   input.CompanyID,
		CompanyName: input.CompanyName,
		Products:    input.Products,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.priceLists = append(s.priceLists, priceList)
	s.persist(storage.KeyPriceLists, s.priceLists)
	return priceList
}

// UpdatePriceListInput represents a partial price list update
type UpdatePriceListInput struct {
	CompanyName *string
	Products    []entity.Product
}

// UpdatePriceList merges the input and stamps the update time. Unknown ids
// are a no-op.
func (s *Store) UpdatePriceList(id uuid.UUID, input UpdatePriceListInput) *entity.PriceList {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx := range s.priceLists {
		if s.priceLists[idx].ID != id {
			continue
		}
		pl := &s.priceLists[idx]
		if input.CompanyName != nil {
			pl.CompanyName = *input.CompanyName
		}
		if input.Products != nil {
			pl.Products = input.Products
		}
		pl.UpdatedAt = s.now()
		s.persist(storage.KeyPriceLists, s.priceLists)
		priceList := *pl
		return &priceList
	}
	return nil
}

// DeletePriceList removes a price list
func (s *Store) DeletePriceList(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	priceLists := s.priceLists[:0]
	for _, pl := range s.priceLists {
		if pl.ID != id {
			priceLists = append(priceLists, pl)
		}
	}
	s.priceLists = priceLists
	s.persist(storage.KeyPriceLists, s.priceLists)
}

// PriceLists returns a snapshot of the price lists
func (s *Store) PriceLists() []entity.PriceList {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.PriceList, len(s.priceLists))
	copy(out, s.priceLists)
	return out
}
