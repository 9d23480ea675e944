package main

import (
	"net/http"

	"github.com/Realeboha228/wings-cafe-main/internal/handler"
	mid "github.com/Realeboha228/wings-cafe-main/internal/middleware"
	"github.com/Realeboha228/wings-cafe-main/internal/store"
	"github.com/Realeboha228/wings-cafe-main/pkg/config"
	"github.com/Realeboha228/wings-cafe-main/pkg/logger"
	"github.com/Realeboha228/wings-cafe-main/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration (.env file is read there if present)
	appConfig, err := config.Load("wings-cafe-inventory")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(&logger.LogConfig{
		Level:       appConfig.Log.Level,
		Environment: appConfig.Server.Env,
		ServiceName: appConfig.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting wings-cafe-inventory", appConfig.LogConfig()...)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize dataset store
	store.Init(appConfig)
	log.Info("Dataset store initialized",
		zap.String("database_file", appConfig.Store.FilePath))

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Product API routes
	api := e.Group("/api")
	api.GET("/products", handler.ListProducts)
	api.GET("/products/:id", handler.GetProduct)
	api.POST("/products", handler.CreateProduct)
	api.PUT("/products/:id", handler.UpdateProduct)
	api.DELETE("/products/:id", handler.DeleteProduct)

	// Transaction API routes
	api.GET("/transactions", handler.ListTransactions)
	api.POST("/transactions", handler.RecordTransaction)

	// Dashboard and report routes
	api.GET("/dashboard", handler.GetDashboard)
	api.GET("/reports/sales", handler.GetSalesReport)
	api.GET("/reports/stock", handler.GetStockReport)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
