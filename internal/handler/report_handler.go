package handler

import (
	"net/http"

	"github.com/Realeboha228/wings-cafe-main/internal/model"
	"github.com/Realeboha228/wings-cafe-main/internal/report"
	"github.com/Realeboha228/wings-cafe-main/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// recentSalesLimit caps the recent-sales view on the sales report.
const recentSalesLimit = 10

// SalesReportResponse is the aggregate view over all sale transactions.
type SalesReportResponse struct {
	report.SalesSummary
	RecentSales []model.Transaction `json:"recentSales"`
}

// StockReportRow is the per-product stock view.
type StockReportRow struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
	UnitsSold int    `json:"unitsSold"`
}

// GetSalesReport returns sales totals and the most recent sales
func GetSalesReport(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Computing sales report")

	ds := loadDataset(c)
	resp := SalesReportResponse{
		SalesSummary: report.Summarize(ds.Transactions),
		RecentSales:  report.RecentSales(ds.Transactions, recentSalesLimit),
	}

	log.Info("Sales report computed",
		zap.Float64("total_revenue", resp.TotalRevenue),
		zap.Int("total_items_sold", resp.TotalItemsSold),
		zap.Int("transaction_count", resp.TransactionCount))
	return c.JSON(http.StatusOK, resp)
}

// GetStockReport returns per-product stock status and sold units
func GetStockReport(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Computing stock report")

	ds := loadDataset(c)
	rows := make([]StockReportRow, 0, len(ds.Products))
	for _, p := range ds.Products {
		rows = append(rows, StockReportRow{
			ID:        p.ID,
			Name:      p.Name,
			Category:  p.Category,
			Quantity:  p.Quantity,
			Status:    report.StockStatus(p.Quantity),
			UnitsSold: report.SoldUnits(ds.Transactions, p.ID),
		})
	}

	log.Info("Stock report computed", zap.Int("count", len(rows)))
	return c.JSON(http.StatusOK, rows)
}
