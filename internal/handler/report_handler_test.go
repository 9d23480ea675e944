package handler

import (
	"net/http"
	"testing"

	"github.com/Realeboha228/wings-cafe-main/internal/model"
)

func TestSalesReport(t *testing.T) {
	ms := setup(t)
	seedTransaction(t, ms, model.Transaction{ID: 1, ProductID: 42, Type: "sale", QuantityChanged: 3, Amount: 7.5})
	seedTransaction(t, ms, model.Transaction{ID: 2, ProductID: 42, Type: "restock", QuantityChanged: 20, Amount: 0})
	seedTransaction(t, ms, model.Transaction{ID: 3, ProductID: 43, Type: "sale", QuantityChanged: 2, Amount: 6})

	c, rec := request(t, http.MethodGet, "/api/reports/sales", "")
	if err := GetSalesReport(c); err != nil {
		t.Fatalf("report: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		TotalRevenue     float64             `json:"totalRevenue"`
		TotalItemsSold   int                 `json:"totalItemsSold"`
		TransactionCount int                 `json:"transactionCount"`
		RecentSales      []model.Transaction `json:"recentSales"`
	}
	decode(t, rec, &resp)
	if resp.TotalRevenue != 13.5 {
		t.Fatalf("expected revenue 13.5, got %v", resp.TotalRevenue)
	}
	if resp.TotalItemsSold != 5 {
		t.Fatalf("expected 5 items sold, got %d", resp.TotalItemsSold)
	}
	if resp.TransactionCount != 2 {
		t.Fatalf("expected 2 sale transactions, got %d", resp.TransactionCount)
	}
	if len(resp.RecentSales) != 2 || resp.RecentSales[0].ID != 3 || resp.RecentSales[1].ID != 1 {
		t.Fatalf("expected recent sales most-recent-first, got %+v", resp.RecentSales)
	}
}

func TestStockReport(t *testing.T) {
	ms := setup(t)
	seedProduct(t, ms, model.Product{ID: 1, Name: "Juice", Category: "Drinks", Quantity: 0})
	seedProduct(t, ms, model.Product{ID: 2, Name: "Muffin", Category: "Bakery", Quantity: 3})
	seedProduct(t, ms, model.Product{ID: 3, Name: "Coffee", Category: "Drinks", Quantity: 10})
	seedTransaction(t, ms, model.Transaction{ID: 4, ProductID: 3, Type: "sale", QuantityChanged: 5})
	seedTransaction(t, ms, model.Transaction{ID: 5, ProductID: 3, Type: "sale", QuantityChanged: 2})

	c, rec := request(t, http.MethodGet, "/api/reports/stock", "")
	if err := GetStockReport(c); err != nil {
		t.Fatalf("report: %v", err)
	}
	var rows []StockReportRow
	decode(t, rec, &rows)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Status != "Out of Stock" {
		t.Fatalf("quantity 0: expected Out of Stock, got %q", rows[0].Status)
	}
	if rows[1].Status != "Low Stock" {
		t.Fatalf("quantity 3: expected Low Stock, got %q", rows[1].Status)
	}
	if rows[2].Status != "In Stock" {
		t.Fatalf("quantity 10: expected In Stock, got %q", rows[2].Status)
	}
	if rows[2].UnitsSold != 7 {
		t.Fatalf("expected 7 units sold for Coffee, got %d", rows[2].UnitsSold)
	}
	if rows[0].UnitsSold != 0 {
		t.Fatalf("expected 0 units sold for Juice, got %d", rows[0].UnitsSold)
	}
}
