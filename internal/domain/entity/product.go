package entity

import (
	"math"

	"github.com/google/uuid"
)

// Product represents a product in the inventory
type Product struct {
	ID                uuid.UUID `json:"id"`
	Code              string    `json:"code"`
	Name              string    `json:"name"`
	PriceBeforeTax    float64   `json:"price_before_tax"`
	PriceAfterTax     float64   `json:"price_after_tax"`
	SellingPrice      float64   `json:"selling_price"`
	OfferPrice        *float64  `json:"offer_price,omitempty"`
	Stock             int       `json:"stock"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	CompanyID         uuid.UUID `json:"company_id"`
	CompanyName       string    `json:"company_name"`
}

// ComputeSellingPrice derives the shelf price from the tax-inclusive cost and
// the profit margin percentage, rounded to 2 decimals (half up on the
// 100x-scaled value).
func ComputeSellingPrice(priceAfterTax, marginPercent float64) float64 {
	return Round2(priceAfterTax * (1 + marginPercent/100))
}

// Round2 rounds a monetary value to 2 decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// EffectiveThreshold returns the product's own low-stock threshold, falling
// back to the global threshold when the product does not set one.
func (p *Product) EffectiveThreshold(globalThreshold int) int {
	if p.LowStockThreshold > 0 {
		return p.LowStockThreshold
	}
	return globalThreshold
}
