package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/mfarouk/marketpro-api/internal/config"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/handler"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/routes"
	"github.com/mfarouk/marketpro-api/internal/storage"
	"github.com/mfarouk/marketpro-api/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the persistence backend
	kv, err := newKV(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	// Load the store, seeding defaults on first run
	s, err := store.New(kv)
	if err != nil {
		log.Fatalf("Failed to load store: %v", err)
	}

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(s),
		Company:      handler.NewCompanyHandler(s),
		Product:      handler.NewProductHandler(s),
		Invoice:      handler.NewInvoiceHandler(s),
		Sale:         handler.NewSaleHandler(s),
		Notification: handler.NewNotificationHandler(s),
		Settings:     handler.NewSettingsHandler(s),
		PriceList:    handler.NewPriceListHandler(s),
		User:         handler.NewUserHandler(s),
		Dashboard:    handler.NewDashboardHandler(s),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Store: s,
		Cfg:   cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newKV(cfg *config.StorageConfig) (storage.KV, error) {
	switch cfg.Driver {
	case "sqlite":
		return storage.NewGormStore(cfg.SQLitePath)
	default:
		return storage.NewFileStore(cfg.Path)
	}
}
