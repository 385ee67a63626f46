package main

import (
	"sales-service/internal/engine"
	"sales-service/internal/handler"
	mid "sales-service/internal/middleware"
	"sales-service/pkg/config"
	"sales-service/pkg/jwtutil"
	"sales-service/pkg/logger"
	"sales-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration (reads .env when present)
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting sales-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Load catalog and build the engine. The engine must be ready before
	// the server starts serving queries.
	salesEngine := engine.New(appConfig.Policies)
	if err := salesEngine.Load(appConfig.Catalog.Path); err != nil {
		log.Fatal("Failed to load catalog", zap.Error(err))
	}
	log.Info("Catalog loaded", zap.String("path", appConfig.Catalog.Path))

	h := handler.New(salesEngine, appConfig.Catalog.Path)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Routes
	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", h.HealthCheck)

	// Sales API routes consumed by the assistant's tool layer
	salesAPI := e.Group("/api/sales")
	salesAPI.POST("/search", h.Search)
	salesAPI.POST("/assembly", h.Assembly)

	// Direct lookup routes
	e.GET("/api/products/:sku", h.GetProduct)
	e.GET("/api/products/:sku/compatible-barebones", h.GetCompatibleBarebones)
	e.GET("/api/variants/:sku", h.GetVariant)
	e.GET("/api/desktop-builds/:id", h.GetDesktopBuild)

	// Admin routes - JWT required
	e.POST("/api/catalog/reload", h.ReloadCatalog, mid.AuthMiddleware)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
