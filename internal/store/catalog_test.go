package store

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCompanyAssignsSequentialCodes(t *testing.T) {
	s, _ := newTestStore(t)

	first := s.AddCompany("Al Nour Trading")
	second := s.AddCompany("Delta Foods")
	third := s.AddCompany("Cairo Imports")

	assert.Equal(t, "10", first.Code)
	assert.Equal(t, "11", second.Code)
	assert.Equal(t, "12", third.Code)
}

func TestUpdateCompany(t *testing.T) {
	s, _ := newTestStore(t)
	company := s.AddCompany("Old Name")

	name := "New Name"
	updated := s.UpdateCompany(company.ID, UpdateCompanyInput{Name: &name})
	require.NotNil(t, updated)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, company.Code, updated.Code)

	assert.Nil(t, s.UpdateCompany(uuid.New(), UpdateCompanyInput{Name: &name}))
}

func TestDeleteCompanyCascadesToProducts(t *testing.T) {
	s, _ := newTestStore(t)
	kept := s.AddCompany("Kept")
	doomed := s.AddCompany("Doomed")

	require.NotNil(t, s.AddProduct(AddProductInput{Name: "Stays", CompanyID: kept.ID}))
	require.NotNil(t, s.AddProduct(AddProductInput{Name: "Goes", CompanyID: doomed.ID}))
	require.NotNil(t, s.AddProduct(AddProductInput{Name: "Also goes", CompanyID: doomed.ID}))

	s.DeleteCompany(doomed.ID)

	assert.Len(t, s.Companies(), 1)
	products := s.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "Stays", products[0].Name)
}

func TestAddProductCodesArePerCompany(t *testing.T) {
	s, _ := newTestStore(t)
	alpha := s.AddCompany("Alpha")
	beta := s.AddCompany("Beta")

	first := s.AddProduct(AddProductInput{Name: "A1", CompanyID: alpha.ID})
	second := s.AddProduct(AddProductInput{Name: "A2", CompanyID: alpha.ID})
	other := s.AddProduct(AddProductInput{Name: "B1", CompanyID: beta.ID})

	require.NotNil(t, first)
	require.NotNil(t, second)
	require.NotNil(t, other)
	assert.Equal(t, fmt.Sprintf("%s-0001", alpha.ID), first.Code)
	assert.Equal(t, fmt.Sprintf("%s-0002", alpha.ID), second.Code)
	assert.Equal(t, fmt.Sprintf("%s-0001", beta.ID), other.Code)
}

func TestAddProductUnknownCompany(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Nil(t, s.AddProduct(AddProductInput{Name: "Orphan", CompanyID: uuid.New()}))
	assert.Empty(t, s.Products())
}

func TestAddProductDerivesSellingPriceFromMargin(t *testing.T) {
	s, _ := newTestStore(t)
	company := s.AddCompany("Alpha")

	// Default margin is 14 percent.
	product := s.AddProduct(AddProductInput{Name: "Tea", PriceAfterTax: 9.99, CompanyID: company.ID})
	require.NotNil(t, product)
	assert.Equal(t, 11.39, product.SellingPrice)

	margin := 15.0
	s.UpdateSettings(UpdateSettingsInput{ProfitMargin: &margin})

	later := s.AddProduct(AddProductInput{Name: "Coffee", PriceAfterTax: 10, CompanyID: company.ID})
	require.NotNil(t, later)
	assert.Equal(t, 11.5, later.SellingPrice)

	// The margin change never rewrites prices already on the shelf.
	assert.Equal(t, 11.39, s.GetProduct(product.ID).SellingPrice)
}

func TestUpdateProductRecomputesSellingPrice(t *testing.T) {
	s, _ := newTestStore(t)
	company := s.AddCompany("Alpha")
	product := s.AddProduct(AddProductInput{Name: "Tea", PriceAfterTax: 10, CompanyID: company.ID})
	require.NotNil(t, product)
	assert.Equal(t, 11.4, product.SellingPrice)

	margin := 20.0
	s.UpdateSettings(UpdateSettingsInput{ProfitMargin: &margin})

	// A name-only update leaves the price alone.
	name := "Green Tea"
	updated := s.UpdateProduct(product.ID, UpdateProductInput{Name: &name})
	require.NotNil(t, updated)
	assert.Equal(t, 11.4, updated.SellingPrice)

	// Touching the tax-inclusive price recomputes with the current margin.
	price := 10.0
	updated = s.UpdateProduct(product.ID, UpdateProductInput{PriceAfterTax: &price})
	require.NotNil(t, updated)
	assert.Equal(t, 12.0, updated.SellingPrice)
}

func TestGetProductByCode(t *testing.T) {
	s, _ := newTestStore(t)
	company := s.AddCompany("Alpha")
	product := s.AddProduct(AddProductInput{Name: "Tea", CompanyID: company.ID})
	require.NotNil(t, product)

	found := s.GetProductByCode(product.Code)
	require.NotNil(t, found)
	assert.Equal(t, product.ID, found.ID)

	assert.Nil(t, s.GetProductByCode("missing-code"))
}
