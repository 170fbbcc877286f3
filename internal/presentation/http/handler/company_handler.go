package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/dto/request"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/dto/response"
	"github.com/mfarouk/marketpro-api/internal/store"
)

// CompanyHandler handles supplier company HTTP requests
type CompanyHandler struct {
	store *store.Store
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(s *store.Store) *CompanyHandler {
	return &CompanyHandler{store: s}
}

// List handles listing companies
func (h *CompanyHandler) List(c *gin.Context) {
	response.OK(c, "Companies retrieved successfully", h.store.Companies())
}

// Create handles creating a company
func (h *CompanyHandler) Create(c *gin.Context) {
	var req request.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	company := h.store.AddCompany(req.Name)
	response.Created(c, "Company created successfully", company)
}

// Get handles getting a single company
func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid company ID")
		return
	}

	company := h.store.GetCompany(id)
	if company == nil {
		response.NotFound(c, "Company not found")
		return
	}
	response.OK(c, "Company retrieved successfully", company)
}

// Update handles updating a company
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid company ID")
		return
	}

	var req request.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	company := h.store.UpdateCompany(id, store.UpdateCompanyInput{Name: req.Name})
	if company == nil {
		response.NotFound(c, "Company not found")
		return
	}
	response.OK(c, "Company updated successfully", company)
}

// Delete handles deleting a company and its products
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid company ID")
		return
	}

	h.store.DeleteCompany(id)
	response.NoContent(c)
}
