package handler

import (
	"net/http"
	"testing"

	"github.com/Realeboha228/wings-cafe-main/internal/model"
)

func TestRecordSaleVerbatim(t *testing.T) {
	ms := setup(t)
	seedProduct(t, ms, model.Product{ID: 42, Name: "Coffee", Price: 2.5, Quantity: 10})

	c, rec := request(t, http.MethodPost, "/api/transactions",
		`{"productId":42,"productName":"Coffee","type":"sale","quantityChanged":3,"amount":7.5}`)
	if err := RecordTransaction(c); err != nil {
		t.Fatalf("record: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var tx model.Transaction
	decode(t, rec, &tx)
	if tx.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if tx.Date.IsZero() {
		t.Fatalf("expected server-assigned date")
	}
	if tx.Amount != 7.5 || tx.QuantityChanged != 3 || tx.Type != "sale" {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
}

func TestRecordSaleFillsAmountAndName(t *testing.T) {
	ms := setup(t)
	seedProduct(t, ms, model.Product{ID: 42, Name: "Coffee", Price: 2.5, Quantity: 10})

	c, rec := request(t, http.MethodPost, "/api/transactions",
		`{"productId":42,"type":"sale","quantityChanged":3}`)
	if err := RecordTransaction(c); err != nil {
		t.Fatalf("record: %v", err)
	}
	var tx model.Transaction
	decode(t, rec, &tx)
	if tx.Amount != 7.5 {
		t.Fatalf("expected amount 7.5 (price x quantity), got %v", tx.Amount)
	}
	if tx.ProductName != "Coffee" {
		t.Fatalf("expected denormalized product name, got %q", tx.ProductName)
	}
}

func TestRecordRestockAmountZero(t *testing.T) {
	ms := setup(t)
	seedProduct(t, ms, model.Product{ID: 42, Name: "Coffee", Price: 2.5, Quantity: 10})

	c, rec := request(t, http.MethodPost, "/api/transactions",
		`{"productId":42,"type":"restock","quantityChanged":20}`)
	if err := RecordTransaction(c); err != nil {
		t.Fatalf("record: %v", err)
	}
	var tx model.Transaction
	decode(t, rec, &tx)
	if tx.Amount != 0 {
		t.Fatalf("expected amount 0 for restock, got %v", tx.Amount)
	}
}

func TestRecordTransactionInvalidJSON(t *testing.T) {
	ms := setup(t)

	c, rec := request(t, http.MethodPost, "/api/transactions", `{"type":`)
	if err := RecordTransaction(c); err != nil {
		t.Fatalf("record: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body map[string]string
	decode(t, rec, &body)
	if body["error"] != "Invalid JSON" {
		t.Fatalf("expected Invalid JSON error, got %q", body["error"])
	}

	ds, _ := ms.Load()
	if len(ds.Transactions) != 0 {
		t.Fatalf("expected no mutation on invalid payload")
	}
}

func TestListTransactionsStoreOrder(t *testing.T) {
	ms := setup(t)
	seedTransaction(t, ms, model.Transaction{ID: 1, Type: "sale"})
	seedTransaction(t, ms, model.Transaction{ID: 2, Type: "restock"})

	c, rec := request(t, http.MethodGet, "/api/transactions", "")
	if err := ListTransactions(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	var txs []model.Transaction
	decode(t, rec, &txs)
	if len(txs) != 2 || txs[0].ID != 1 || txs[1].ID != 2 {
		t.Fatalf("unexpected transactions: %+v", txs)
	}
}

// Recording a sale is a log append only; the paired stock adjustment is a
// separate product update issued by the client. This pins the two-step
// pattern end to end.
func TestSaleLeavesQuantityUntouched(t *testing.T) {
	ms := setup(t)

	c, rec := request(t, http.MethodPost, "/api/products",
		`{"name":"Coffee","price":2.5,"quantity":10}`)
	if err := CreateProduct(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	var created model.Product
	decode(t, rec, &created)

	c2, rec2 := request(t, http.MethodPost, "/api/transactions",
		`{"productId":`+jsonID(created.ID)+`,"productName":"Coffee","type":"sale","quantityChanged":3,"amount":7.5}`)
	if err := RecordTransaction(c2); err != nil {
		t.Fatalf("record: %v", err)
	}
	if rec2.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec2.Code)
	}

	ds, _ := ms.Load()
	if ds.Products[0].Quantity != 10 {
		t.Fatalf("transaction call adjusted quantity: %d", ds.Products[0].Quantity)
	}

	c3, rec3 := request(t, http.MethodGet, "/api/dashboard", "")
	if err := GetDashboard(c3); err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	var dash struct {
		TotalProducts int `json:"totalProducts"`
		LowStockItems int `json:"lowStockItems"`
	}
	decode(t, rec3, &dash)
	if dash.TotalProducts != 1 || dash.LowStockItems != 0 {
		t.Fatalf("unexpected dashboard: %+v", dash)
	}
}
