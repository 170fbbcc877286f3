package entity

// Settings holds the store-wide configuration edited from the settings page
type Settings struct {
	AppName           string            `json:"app_name"`
	ProfitMargin      float64           `json:"profit_margin"`
	LowStockThreshold int               `json:"low_stock_threshold"`
	SidebarLabels     map[string]string `json:"sidebar_labels"`
}

// DefaultSettings returns the settings applied on first run
func DefaultSettings() Settings {
	return Settings{
		AppName:           "Market Pro",
		ProfitMargin:      14,
		LowStockThreshold: 10,
		SidebarLabels: map[string]string{
			"daily_sales":    "Daily Sales",
			"create_invoice": "Create Invoice",
			"pending_orders": "Pending Orders",
			"price_lists":    "Company Price Lists",
			"inventory":      "Inventory",
			"sales_record":   "Sales Record",
			"offer_prices":   "Offer Prices",
			"shelf_prices":   "Shelf Prices",
			"settings":       "Settings",
		},
	}
}
