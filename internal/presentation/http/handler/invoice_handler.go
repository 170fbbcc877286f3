package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mfarouk/marketpro-api/internal/domain/entity"
	"github.com/mfarouk/marketpro-api/internal/domain/enum"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/dto/request"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/dto/response"
	"github.com/mfarouk/marketpro-api/internal/store"
	"github.com/mfarouk/marketpro-api/pkg/pagination"
)

// InvoiceHandler handles supplier invoice HTTP requests
type InvoiceHandler struct {
	store *store.Store
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(s *store.Store) *InvoiceHandler {
	return &InvoiceHandler{store: s}
}

// List handles listing invoices with an optional status filter
func (h *InvoiceHandler) List(c *gin.Context) {
	var filter request.InvoiceFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	invoices := h.store.Invoices()

	if filter.Status != "" {
		status, ok := enum.ParseInvoiceStatus(filter.Status)
		if !ok {
			response.BadRequest(c, "Invalid invoice status")
			return
		}
		filtered := invoices[:0]
		for _, inv := range invoices {
			if inv.Status == status {
				filtered = append(filtered, inv)
			}
		}
		invoices = filtered
	}

	params := &pagination.PaginationParams{Page: filter.Page, PerPage: filter.PerPage}
	result := pagination.Paginate(invoices, params)
	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Create handles drafting an invoice. Every line is snapshotted from the
// catalog as it stands right now, including the pre-delivery stock level.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	company := h.store.GetCompany(req.CompanyID)
	if company == nil {
		response.NotFound(c, "Company not found")
		return
	}

	items := make([]entity.InvoiceItem, 0, len(req.Items))
	var total float64
	for _, line := range req.Items {
		product := h.store.GetProduct(line.ProductID)
		if product == nil {
			response.NotFound(c, "Product not found")
			return
		}

		price := product.SellingPrice
		if line.Price != nil {
			price = *line.Price
		}
		lineTotal := entity.Round2(price * float64(line.Quantity))
		items = append(items, entity.InvoiceItem{
			ProductID:   product.ID,
			ProductCode: product.Code,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			Price:       price,
			Total:       lineTotal,
			Stock:       product.Stock,
		})
		total += lineTotal
	}
	total = entity.Round2(total)

	invoice := h.store.AddInvoice(store.AddInvoiceInput{
		CompanyID:       company.ID,
		CompanyCode:     company.Code,
		CompanyName:     company.Name,
		Items:           items,
		TotalAmount:     total,
		PaidAmount:      0,
		RemainingAmount: total,
		Status:          enum.InvoiceStatusPending,
		CreatedBy:       SessionUserName(c),
	})
	response.Created(c, "Invoice created successfully", invoice)
}

// Get handles getting a single invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice := h.store.GetInvoice(id)
	if invoice == nil {
		response.NotFound(c, "Invoice not found")
		return
	}
	response.OK(c, "Invoice retrieved successfully", invoice)
}

// Update handles updating an invoice
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := store.UpdateInvoiceInput{
		TotalAmount:     req.TotalAmount,
		PaidAmount:      req.PaidAmount,
		RemainingAmount: req.RemainingAmount,
	}
	if req.Status != nil {
		status, ok := enum.ParseInvoiceStatus(*req.Status)
		if !ok {
			response.BadRequest(c, "Invalid invoice status")
			return
		}
		input.Status = &status
	}

	invoice := h.store.UpdateInvoice(id, input)
	if invoice == nil {
		response.NotFound(c, "Invoice not found")
		return
	}
	response.OK(c, "Invoice updated successfully", invoice)
}

// AddPayment handles applying a payment to an invoice
func (h *InvoiceHandler) AddPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice := h.store.AddPayment(id, req.Amount)
	if invoice == nil {
		response.NotFound(c, "Invoice not found")
		return
	}
	response.OK(c, "Payment recorded successfully", invoice)
}

// MarkDelivered handles confirming delivery of a pending invoice
func (h *InvoiceHandler) MarkDelivered(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	existing := h.store.GetInvoice(id)
	if existing == nil {
		response.NotFound(c, "Invoice not found")
		return
	}
	if existing.Status != enum.InvoiceStatusPending {
		response.BadRequest(c, "Only pending invoices can be marked delivered")
		return
	}

	invoice := h.store.MarkDelivered(id)
	if invoice == nil {
		response.BadRequest(c, "Only pending invoices can be marked delivered")
		return
	}
	response.OK(c, "Invoice marked as delivered", invoice)
}
