package store

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/mfarouk/marketpro-api/internal/domain/entity"
	"github.com/mfarouk/marketpro-api/internal/storage"
)

// AddCompany appends a company. The display code is derived from the number
// of companies at creation time and is never recomputed, so codes are not
// reused after deletions.
func (s *Store) AddCompany(name string) entity.Company {
	s.mu.Lock()
	defer s.mu.Unlock()

	company := entity.Company{
		ID:        uuid.New(),
		Code:      strconv.Itoa(10 + len(s.companies)),
		Name:      name,
		CreatedAt: s.now(),
	}
	s.companies = append(s.companies, company)
	s.persist(storage.KeyCompanies, s.companies)
	return company
}

// UpdateCompanyInput represents a partial company update
type UpdateCompanyInput struct {
	Name *string
}

// UpdateCompany merges the input into the company. Unknown ids are a no-op.
func (s *Store) UpdateCompany(id uuid.UUID, input UpdateCompanyInput) *entity.Company {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx := range s.companies {
		if s.companies[idx].ID != id {
			continue
		}
		if input.Name != nil {
			s.companies[idx].Name = *input.Name
		}
		s.persist(storage.KeyCompanies, s.companies)
		company := s.companies[idx]
		return &company
	}
	return nil
}

// DeleteCompany removes the company and cascades to all of its products.
func (s *Store) DeleteCompany(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	companies := s.companies[:0]
	for _, c := range s.companies {
		if c.ID != id {
			companies = append(companies, c)
		}
	}
	s.companies = companies

	products := s.products[:0]
	for _, p := range s.products {
		if p.CompanyID != id {
			products = append(products, p)
		}
	}
	s.products = products

	s.persist(storage.KeyCompanies, s.companies)
	s.persist(storage.KeyProducts, s.products)
}

// Companies returns a snapshot of the company list
func (s *Store) Companies() []entity.Company {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Company, len(s.companies))
	copy(out, s.companies)
	return out
}

// GetCompany returns the company with the given id, or nil
func (s *Store) GetCompany(id uuid.UUID) *entity.Company {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.companies {
		if c.ID == id {
			company := c
			return &company
		}
	}
	return nil
}

// AddProductInput represents the create product input
type AddProductInput struct {
	Name              string
	PriceBeforeTax    float64
	PriceAfterTax     float64
	OfferPrice        *float64
	Stock             int
	LowStockThreshold int
	CompanyID         uuid.UUID
}

// AddProduct appends a product for a company. The product code is the
// company id plus a zero-padded per-company sequence, and the selling price
// is derived from the current global profit margin.
func (s *Store) AddProduct(input AddProductInput) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	var company *entity.Company
	for idx := range s.companies {
		if s.companies[idx].ID == input.CompanyID {
			company = &s.companies[idx]
			break
		}
	}
	if company == nil {
		return nil
	}

	count := 0
	for _, p := range s.products {
		if p.CompanyID == input.CompanyID {
			count++
		}
	}

	product := entity.Product{
		ID:                uuid.New(),
		Code:              fmt.Sprintf("%s-%04d", input.CompanyID, count+1),
		Name:              input.Name,
		PriceBeforeTax:    input.PriceBeforeTax,
		PriceAfterTax:     input.PriceAfterTax,
		SellingPrice:      entity.ComputeSellingPrice(input.PriceAfterTax, s.settings.ProfitMargin),
		OfferPrice:        input.OfferPrice,
		Stock:             input.Stock,
		LowStockThreshold: input.LowStockThreshold,
		CompanyID:         company.ID,
		CompanyName:       company.Name,
	}
	s.products = append(s.products, product)
	s.persist(storage.KeyProducts, s.products)
	return &product
}

// UpdateProductInput represents a partial product update
type UpdateProductInput struct {
	Name              *string
	PriceBeforeTax    *float64
	PriceAfterTax     *float64
	OfferPrice        *float64
	Stock             *int
	LowStockThreshold *int
}

// UpdateProduct merges the input into the product. When the tax-inclusive
// price is part of the update the selling price is recomputed from the
// margin configured right now, not from any margin seen before.
func (s *Store) UpdateProduct(id uuid.UUID, input UpdateProductInput) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx := range s.products {
		if s.products[idx].ID != id {
			continue
		}
		p := &s.products[idx]
		if input.Name != nil {
			p.Name = *input.Name
		}
		if input.PriceBeforeTax != nil {
			p.PriceBeforeTax = *input.PriceBeforeTax
		}
		if input.PriceAfterTax != nil {
			p.PriceAfterTax = *input.PriceAfterTax
			p.SellingPrice = entity.ComputeSellingPrice(*input.PriceAfterTax, s.settings.ProfitMargin)
		}
		if input.OfferPrice != nil {
			p.OfferPrice = input.OfferPrice
		}
		if input.Stock != nil {
			p.Stock = *input.Stock
		}
		if input.LowStockThreshold != nil {
			p.LowStockThreshold = *input.LowStockThreshold
		}
		s.persist(storage.KeyProducts, s.products)
		product := *p
		return &product
	}
	return nil
}

// DeleteProduct removes a product from the catalog
func (s *Store) DeleteProduct(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			products = append(products, p)
		}
	}
	s.products = products
	s.persist(storage.KeyProducts, s.products)
}

// Products returns a snapshot of the product list
func (s *Store) Products() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

// GetProduct returns the product with the given id, or nil
func (s *Store) GetProduct(id uuid.UUID) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p := s.findProductLocked(id); p != nil {
		product := *p
		return &product
	}
	return nil
}

// GetProductByCode returns the product with the given code, or nil. The POS
// screens look products up by the code typed at the till.
func (s *Store) GetProductByCode(code string) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.Code == code {
			product := p
			return &product
		}
	}
	return nil
}

func (s *Store) findProductLocked(id uuid.UUID) *entity.Product {
	for idx := range s.products {
		if s.products[idx].ID == id {
			return &s.products[idx]
		}
	}
	return nil
}
