package request

import "github.com/google/uuid"

// UpdateSettingsRequest represents a settings update request
type UpdateSettingsRequest struct {
	AppName           *string           `json:"app_name" binding:"omitempty,min=1,max=255"`
	ProfitMargin      *float64          `json:"profit_margin" binding:"omitempty,min=0"`
	LowStockThreshold *int              `json:"low_stock_threshold" binding:"omitempty,min=0"`
	SidebarLabels     map[string]string `json:"sidebar_labels"`
}

// CreatePriceListRequest represents a price list creation request
type CreatePriceListRequest struct {
	CompanyID uuid.UUID `json:"company_id" binding:"required"`
}

// UpdatePriceListRequest represents a price list update request. Refresh
// re-snapshots the company's current products into the list.
type UpdatePriceListRequest struct {
	Refresh bool `json:"refresh"`
}

// CreateUserRequest represents a user creation request
type CreateUserRequest struct {
	Username    string   `json:"username" binding:"required,min=1,max=255"`
	Password    string   `json:"password" binding:"required,min=1"`
	Role        string   `json:"role" binding:"omitempty,oneof=admin manager employee"`
	Name        string   `json:"name" binding:"required,min=1,max=255"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	Permissions []string `json:"permissions"`
}

// UpdateUserRequest represents a user update request
type UpdateUserRequest struct {
	Password    *string  `json:"password" binding:"omitempty,min=1"`
	Role        *string  `json:"role" binding:"omitempty,oneof=admin manager employee"`
	Name        *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Phone       *string  `json:"phone"`
	Address     *string  `json:"address"`
	Permissions []string `json:"permissions"`
}
