// Package report computes the derived views over products and transactions:
// stock labels, sold-unit counts, and sales totals. Everything here is pure
// computation over the dataset; nothing is stored.
package report

import "github.com/Realeboha228/wings-cafe-main/internal/model"

// LowStockThreshold is the fixed quantity below which a product counts as
// low stock.
const LowStockThreshold = 5

// Stock status labels.
const (
	StatusOutOfStock = "Out of Stock"
	StatusLowStock   = "Low Stock"
	StatusInStock    = "In Stock"
)

// SalesSummary aggregates all sale transactions.
type SalesSummary struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalItemsSold   int     `json:"totalItemsSold"`
	TransactionCount int     `json:"transactionCount"`
}

// LowStockCount returns how many products have quantity below the low-stock
// threshold.
func LowStockCount(products []model.Product) int {
	count := 0
	for _, p := range products {
		if p.Quantity < LowStockThreshold {
			count++
		}
	}
	return count
}

// StockStatus returns the display label for a product quantity.
func StockStatus(quantity int) string {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity < LowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// SoldUnits sums quantityChanged over sale transactions for one product.
func SoldUnits(transactions []model.Transaction, productID int64) int {
	total := 0
	for _, t := range transactions {
		if t.Type == model.TransactionTypeSale && t.ProductID == productID {
			total += t.QuantityChanged
		}
	}
	return total
}

// Summarize totals amount, units, and entry count over sale transactions.
func Summarize(transactions []model.Transaction) SalesSummary {
	var s SalesSummary
	for _, t := range transactions {
		if t.Type != model.TransactionTypeSale {
			continue
		}
		s.TotalRevenue += t.Amount
		s.TotalItemsSold += t.QuantityChanged
		s.TransactionCount++
	}
	return s
}

// RecentSales returns the last n sale transactions in store order, most
// recent first.
func RecentSales(transactions []model.Transaction, n int) []model.Transaction {
	sales := make([]model.Transaction, 0, n)
	for _, t := range transactions {
		if t.Type == model.TransactionTypeSale {
			sales = append(sales, t)
		}
	}
	if len(sales) > n {
		sales = sales[len(sales)-n:]
	}
	// reverse into most-recent-first order
	out := make([]model.Transaction, 0, len(sales))
	for i := len(sales) - 1; i >= 0; i-- {
		out = append(out, sales[i])
	}
	return out
}
