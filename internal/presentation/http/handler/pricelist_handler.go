package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mfarouk/marketpro-api/internal/domain/entity"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/dto/request"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/dto/response"
	"github.com/mfarouk/marketpro-api/internal/store"
)

// PriceListHandler handles company price list HTTP requests
type PriceListHandler struct {
	store *store.Store
}

// NewPriceListHandler creates a new price list handler
func NewPriceListHandler(s *store.Store) *PriceListHandler {
	return &PriceListHandler{store: s}
}

// List handles listing price lists
func (h *PriceListHandler) List(c *gin.Context) {
	response.OK(c, "Price lists retrieved successfully", h.store.PriceLists())
}

// Create handles snapshotting a company's current products into a new
// price list
func (h *PriceListHandler) Create(c *gin.Context) {
	var req request.CreatePriceListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	company := h.store.GetCompany(req.CompanyID)
	if company == nil {
		response.NotFound(c, "Company not found")
		return
	}

	priceList := h.store.AddPriceList(store.AddPriceListInput{
		CompanyID:   company.ID,
		CompanyName: company.Name,
		Products:    h.companyProducts(company.ID),
	})
	response.Created(c, "Price list created successfully", priceList)
}

// Update handles refreshing a price list from the company's current catalog
func (h *PriceListHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid price list ID")
		return
	}

	var req request.UpdatePriceListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := store.UpdatePriceListInput{}
	if req.Refresh {
		existing := h.findPriceList(id)
		if existing == nil {
			response.NotFound(c, "Price list not found")
			return
		}
		input.Products = h.companyProducts(existing.CompanyID)
	}

	priceList := h.store.UpdatePriceList(id, input)
	if priceList == nil {
		response.NotFound(c, "Price list not found")
		return
	}
	response.OK(c, "Price list updated successfully", priceList)
}

// Delete handles deleting a price list
func (h *PriceListHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid price list ID")
		return
	}

	h.store.DeletePriceList(id)
	response.NoContent(c)
}

func (h *PriceListHandler) findPriceList(id uuid.UUID) *entity.PriceList {
	for _, pl := range h.store.PriceLists() {
		if pl.ID == id {
			return &pl
		}
	}
	return nil
}

func (h *PriceListHandler) companyProducts(companyID uuid.UUID) []entity.Product {
	products := []entity.Product{}
	for _, p := range h.store.Products() {
		if p.CompanyID == companyID {
			products = append(products, p)
		}
	}
	return products
}
