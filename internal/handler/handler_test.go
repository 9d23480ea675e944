package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/Realeboha228/wings-cafe-main/internal/model"
	"github.com/Realeboha228/wings-cafe-main/internal/store"
	"github.com/Realeboha228/wings-cafe-main/pkg/config"
	"github.com/Realeboha228/wings-cafe-main/prometheus"

	"github.com/labstack/echo/v4"
)

// setup injects a fresh in-memory store and returns it for seeding and
// inspection.
func setup(t *testing.T) *store.MemStore {
	t.Helper()
	cfg, err := config.Load("wings-cafe-inventory")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	prometheus.InitMetrics(cfg)
	ms := store.NewMemStore()
	store.Set(ms)
	return ms
}

func request(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func seedProduct(t *testing.T, ms *store.MemStore, p model.Product) {
	t.Helper()
	err := ms.Mutate(func(ds *model.Dataset) error {
		ds.Products = append(ds.Products, p)
		return nil
	})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
}

func jsonID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func seedTransaction(t *testing.T, ms *store.MemStore, tx model.Transaction) {
	t.Helper()
	err := ms.Mutate(func(ds *model.Dataset) error {
		ds.Transactions = append(ds.Transactions, tx)
		return nil
	})
	if err != nil {
		t.Fatalf("seed transaction: %v", err)
	}
}
