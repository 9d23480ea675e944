package handler

import (
	"net/http"

	"github.com/Realeboha228/wings-cafe-main/internal/report"
	"github.com/Realeboha228/wings-cafe-main/pkg/logger"
	"github.com/Realeboha228/wings-cafe-main/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// GetDashboard returns the product count and low-stock count
func GetDashboard(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Computing dashboard summary")

	ds := loadDataset(c)
	totalProducts := len(ds.Products)
	lowStockItems := report.LowStockCount(ds.Products)

	prometheus.UpdateLowStockItems(lowStockItems)
	log.Info("Dashboard summary computed",
		zap.Int("total_products", totalProducts),
		zap.Int("low_stock_items", lowStockItems))
	return c.JSON(http.StatusOK, echo.Map{
		"totalProducts": totalProducts,
		"lowStockItems": lowStockItems,
	})
}
