package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mfarouk/marketpro-api/internal/domain/entity"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/dto/request"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/dto/response"
	"github.com/mfarouk/marketpro-api/internal/store"
	"github.com/mfarouk/marketpro-api/pkg/pagination"
)

// SaleHandler handles point-of-sale HTTP requests
type SaleHandler struct {
	store *store.Store
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(s *store.Store) *SaleHandler {
	return &SaleHandler{store: s}
}

// List handles listing sales, optionally restricted to a date range. Dates
// are day-granular; the end date extends to the end of that day.
func (h *SaleHandler) List(c *gin.Context) {
	var filter request.SaleFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	var sales []entity.Sale
	if filter.StartDate != "" || filter.EndDate != "" {
		start, end, err := parseDateRange(filter.StartDate, filter.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid date range, expected YYYY-MM-DD")
			return
		}
		sales = h.store.SalesByDateRange(start, end)
	} else {
		sales = h.store.Sales()
	}

	params := &pagination.PaginationParams{Page: filter.Page, PerPage: filter.PerPage}
	result := pagination.Paginate(sales, params)
	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start := time.Time{}
	end := time.Now()

	if startStr != "" {
		parsed, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = parsed
	}
	if endStr != "" {
		parsed, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	return start, end, nil
}

// Create handles recording a point-of-sale transaction. Line prices default
// to the product's offer price when one is set, otherwise its selling price;
// the received amount defaults to the total for exact payments.
func (h *SaleHandler) Create(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]entity.SaleItem, 0, len(req.Items))
	var total float64
	for _, line := range req.Items {
		product := h.store.GetProduct(line.ProductID)
		if product == nil {
			response.NotFound(c, "Product not found")
			return
		}

		price := product.SellingPrice
		if product.OfferPrice != nil {
			price = *product.OfferPrice
		}
		if line.Price != nil {
			price = *line.Price
		}
		lineTotal := entity.Round2(price * float64(line.Quantity))
		items = append(items, entity.SaleItem{
			ProductID:   product.ID,
			ProductCode: product.Code,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			Price:       price,
			Total:       lineTotal,
		})
		total += lineTotal
	}
	total = entity.Round2(total)

	received := total
	if req.ReceivedAmount != nil {
		received = *req.ReceivedAmount
	}

	sale := h.store.AddSale(store.AddSaleInput{
		Items:          items,
		TotalAmount:    total,
		ReceivedAmount: received,
		CreatedBy:      SessionUserName(c),
	})
	response.Created(c, "Sale recorded successfully", sale)
}

// Get handles getting a single sale
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale := h.store.GetSale(id)
	if sale == nil {
		response.NotFound(c, "Sale not found")
		return
	}
	response.OK(c, "Sale retrieved successfully", sale)
}
