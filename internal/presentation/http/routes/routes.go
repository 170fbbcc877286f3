package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mfarouk/marketpro-api/internal/config"
	"github.com/mfarouk/marketpro-api/internal/domain/enum"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/handler"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/middleware"
	"github.com/mfarouk/marketpro-api/internal/store"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Company      *handler.CompanyHandler
	Product      *handler.ProductHandler
	Invoice      *handler.InvoiceHandler
	Sale         *handler.SaleHandler
	Notification *handler.NotificationHandler
	Settings     *handler.SettingsHandler
	PriceList    *handler.PriceListHandler
	User         *handler.UserHandler
	Dashboard    *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Store *store.Store
	Cfg   *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes (session required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.Store))

		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/auth/me", h.Auth.Me)

	// Settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", h.Settings.Update)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Stats)

	// Companies
	registerCompanyRoutes(protected, h)

	// Products
	registerProductRoutes(protected, h)

	// Invoices
	registerInvoiceRoutes(protected, h)

	// Sales
	registerSaleRoutes(protected, h)

	// Notifications
	registerNotificationRoutes(protected, h)

	// Price lists
	registerPriceListRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)
}

func registerCompanyRoutes(protected *gin.RouterGroup, h *Handlers) {
	companies := protected.Group("/companies")
	{
		companies.GET("", h.Company.List)
		companies.POST("", h.Company.Create)
		companies.GET("/:id", h.Company.Get)
		companies.PUT("/:id", h.Company.Update)
		companies.DELETE("/:id", h.Company.Delete)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/code/:code", h.Product.GetByCode)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
		products.PUT("/:id/stock", h.Product.UpdateStock)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers) {
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", h.Invoice.Create)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id", h.Invoice.Update)
		invoices.POST("/:id/payments", h.Invoice.AddPayment)
		invoices.POST("/:id/deliver", h.Invoice.MarkDelivered)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.POST("", h.Sale.Create)
		sales.GET("/:id", h.Sale.Get)
	}
}

func registerNotificationRoutes(protected *gin.RouterGroup, h *Handlers) {
	notifications := protected.Group("/notifications")
	{
		notifications.GET("", h.Notification.List)
		notifications.PUT("/:id/read", h.Notification.MarkRead)
		notifications.POST("/check-low-stock", h.Notification.CheckLowStock)
	}
}

func registerPriceListRoutes(protected *gin.RouterGroup, h *Handlers) {
	priceLists := protected.Group("/price-lists")
	{
		priceLists.GET("", h.PriceList.List)
		priceLists.POST("", h.PriceList.Create)
		priceLists.PUT("/:id", h.PriceList.Update)
		priceLists.DELETE("/:id", h.PriceList.Delete)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireRole(enum.UserRoleAdmin))
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}
}
