package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/openshelf/storefront-api/config"
	"github.com/openshelf/storefront-api/internal/app/controller"
	"github.com/openshelf/storefront-api/internal/app/repository"
	"github.com/openshelf/storefront-api/internal/app/service"
	"github.com/openshelf/storefront-api/internal/db"
	"github.com/openshelf/storefront-api/internal/middleware"
	"github.com/openshelf/storefront-api/internal/router"
	"github.com/openshelf/storefront-api/pkg/catalog"
	"github.com/openshelf/storefront-api/pkg/logger"
	"github.com/openshelf/storefront-api/pkg/payment/stripe"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Storefront API Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize external clients
	catalogClient, err := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)
	if err != nil {
		logger.Fatal("Failed to create catalog client", err)
	}

	stripeClient, err := stripe.NewClient(stripe.Config{
		SecretKey: cfg.Payment.Stripe.SecretKey,
		BaseURL:   cfg.Payment.Stripe.BaseURL,
		Currency:  cfg.Payment.Stripe.Currency,
	})
	if err != nil {
		logger.Fatal("Failed to create payment client", err)
	}

	// Initialize repositories
	cartRepo := repository.NewCartRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())

	// Initialize services
	cartService := service.NewCartService(cartRepo)
	orderService := service.NewOrderService(db.GetDB(), orderRepo, cartRepo)
	paymentService := service.NewPaymentService(stripeClient, cartRepo)
	catalogService := service.NewCatalogService(catalogClient)

	// Initialize controllers
	productController := controller.NewProductController(catalogService)
	cartController := controller.NewCartController(cartService)
	orderController := controller.NewOrderController(orderService)
	paymentController := controller.NewPaymentController(paymentService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		productController,
		cartController,
		orderController,
		paymentController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
