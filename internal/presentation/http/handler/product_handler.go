package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mfarouk/marketpro-api/internal/domain/entity"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/dto/request"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/dto/response"
	"github.com/mfarouk/marketpro-api/internal/store"
	"github.com/mfarouk/marketpro-api/pkg/pagination"
)

// ProductHandler handles inventory HTTP requests
type ProductHandler struct {
	store *store.Store
}

// NewProductHandler creates a new product handler
func NewProductHandler(s *store.Store) *ProductHandler {
	return &ProductHandler{store: s}
}

// List handles listing products with optional search, company and low-stock
// filters, page-based pagination on top.
func (h *ProductHandler) List(c *gin.Context) {
	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	products := h.store.Products()

	if filter.CompanyID != "" {
		companyID, err := uuid.Parse(filter.CompanyID)
		if err != nil {
			response.BadRequest(c, "Invalid company ID")
			return
		}
		products = filterProducts(products, func(p entity.Product) bool {
			return p.CompanyID == companyID
		})
	}

	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		products = filterProducts(products, func(p entity.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.Code), needle)
		})
	}

	if filter.LowStock {
		threshold := h.store.Settings().LowStockThreshold
		products = filterProducts(products, func(p entity.Product) bool {
			return p.Stock <= p.EffectiveThreshold(threshold)
		})
	}

	params := &pagination.PaginationParams{Page: filter.Page, PerPage: filter.PerPage}
	result := pagination.Paginate(products, params)
	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

func filterProducts(products []entity.Product, keep func(entity.Product) bool) []entity.Product {
	out := products[:0]
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Create handles creating a product
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product := h.store.AddProduct(store.AddProductInput{
		Name:              req.Name,
		PriceBeforeTax:    req.PriceBeforeTax,
		PriceAfterTax:     req.PriceAfterTax,
		OfferPrice:        req.OfferPrice,
		Stock:             req.Stock,
		LowStockThreshold: req.LowStockThreshold,
		CompanyID:         req.CompanyID,
	})
	if product == nil {
		response.NotFound(c, "Company not found")
		return
	}
	response.Created(c, "Product created successfully", product)
}

// Get handles getting a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product := h.store.GetProduct(id)
	if product == nil {
		response.NotFound(c, "Product not found")
		return
	}
	response.OK(c, "Product retrieved successfully", product)
}

// GetByCode handles looking a product up by the code typed at the till
func (h *ProductHandler) GetByCode(c *gin.Context) {
	product := h.store.GetProductByCode(c.Param("code"))
	if product == nil {
		response.NotFound(c, "Product not found")
		return
	}
	response.OK(c, "Product retrieved successfully", product)
}

// Update handles updating a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product := h.store.UpdateProduct(id, store.UpdateProductInput{
		Name:              req.Name,
		PriceBeforeTax:    req.PriceBeforeTax,
		PriceAfterTax:     req.PriceAfterTax,
		OfferPrice:        req.OfferPrice,
		Stock:             req.Stock,
		LowStockThreshold: req.LowStockThreshold,
	})
	if product == nil {
		response.NotFound(c, "Product not found")
		return
	}
	response.OK(c, "Product updated successfully", product)
}

// Delete handles deleting a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	h.store.DeleteProduct(id)
	response.NoContent(c)
}

// UpdateStock handles setting a product's stock level directly
func (h *ProductHandler) UpdateStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if h.store.GetProduct(id) == nil {
		response.NotFound(c, "Product not found")
		return
	}

	h.store.UpdateStock(id, req.Stock)
	response.OK(c, "Stock updated successfully", h.store.GetProduct(id))
}

// LowStock handles listing products at or below their low-stock threshold
func (h *ProductHandler) LowStock(c *gin.Context) {
	response.OK(c, "Low stock products retrieved successfully", h.store.LowStockProducts())
}
