package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	mt "github.com/RanganathP76/ecommerce-frontend/external/midtrans"
	"github.com/RanganathP76/ecommerce-frontend/internal/backend"
	"github.com/RanganathP76/ecommerce-frontend/internal/config"
	"github.com/RanganathP76/ecommerce-frontend/internal/middleware"
	"github.com/RanganathP76/ecommerce-frontend/internal/services"
	"github.com/RanganathP76/ecommerce-frontend/internal/store"
)

func main() {
	// ======================
	// CONFIG + LOGGER
	// ======================
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger.Info("starting storefront API",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.String("backend", cfg.Backend.BaseURL),
	)

	middleware.SetSecret(cfg.JWTSecret)

	// ======================
	// SESSION STORE
	// ======================
	var adapter store.Adapter
	if cfg.Store.Path != "" {
		boltAdapter, err := store.NewBoltAdapter(cfg.Store.Path)
		if err != nil {
			logger.Fatal("failed to open session store", zap.Error(err))
		}
		defer boltAdapter.Close()
		adapter = boltAdapter
	} else {
		adapter = store.NewMemoryAdapter()
	}
	sessions := store.New(adapter)

	// ======================
	// EXTERNALS
	// ======================
	backendClient := backend.NewClient(cfg.Backend, logger)
	gateway := mt.NewSnapGateway(cfg.Gateway)

	// ======================
	// SERVICES
	// ======================
	cartSvc := services.NewCartService(sessions)
	checkoutSvc := services.NewCheckoutService(backendClient, gateway, sessions, logger)
	orderSvc := services.NewOrderService(backendClient, sessions)
	authSvc := services.NewAuthService(backendClient, sessions)
	catalogSvc := services.NewCatalogService(backendClient)
	feedSvc := services.NewFeedService(backendClient, publicBaseURL())

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.SessionMiddleware())

	api := e.Group("/storefront")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerCatalogRoutes(api, catalogSvc)
	registerCartRoutes(api, cartSvc)
	registerCheckoutRoutes(api, checkoutSvc)
	registerOrderRoutes(api, orderSvc)
	registerAuthRoutes(api, authSvc)
	registerPaymentRoutes(api, checkoutSvc)
	registerFeedRoutes(api, feedSvc)

	// ======================
	// SERVER
	// ======================
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			logger.Info("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")
	e.Close()
}

func publicBaseURL() string {
	if v := os.Getenv("PUBLIC_BASE_URL"); v != "" {
		return v
	}
	return "https://cuztory.in"
}
