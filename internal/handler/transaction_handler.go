package handler

import (
	"net/http"
	"time"

	"github.com/Realeboha228/wings-cafe-main/internal/model"
	"github.com/Realeboha228/wings-cafe-main/internal/store"
	"github.com/Realeboha228/wings-cafe-main/pkg/logger"
	"github.com/Realeboha228/wings-cafe-main/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TransactionRequest defines the structure for transaction recording
// requests. Amount is a pointer so a sparse client can omit it and have the
// server fill in price × quantity for sales (restocks get 0).
type TransactionRequest struct {
	ProductID       int64    `json:"productId"`
	ProductName     string   `json:"productName"`
	Type            string   `json:"type"`
	QuantityChanged int      `json:"quantityChanged"`
	Amount          *float64 `json:"amount"`
}

// ListTransactions handles retrieving all transactions in store order
func ListTransactions(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Listing transactions")

	ds := loadDataset(c)

	log.Info("Transactions retrieved successfully", zap.Int("count", len(ds.Transactions)))
	return c.JSON(http.StatusOK, ds.Transactions)
}

// RecordTransaction appends a transaction to the log. The referenced
// product's quantity is never touched here; the stock adjustment is the
// caller's own follow-up product update.
func RecordTransaction(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Recording transaction")

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request body", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid JSON",
		})
	}

	tx := model.Transaction{
		ID:              store.NextID(),
		ProductID:       req.ProductID,
		ProductName:     req.ProductName,
		Type:            req.Type,
		QuantityChanged: req.QuantityChanged,
		Date:            time.Now().UTC(),
	}
	if req.Amount != nil {
		tx.Amount = *req.Amount
	}

	defer prometheus.TrackStoreOperation("record_transaction")(time.Now())
	err := store.Get().Mutate(func(ds *model.Dataset) error {
		if req.Amount == nil || tx.ProductName == "" {
			for _, p := range ds.Products {
				if p.ID != req.ProductID {
					continue
				}
				if req.Amount == nil && req.Type == model.TransactionTypeSale {
					tx.Amount = p.Price * float64(req.QuantityChanged)
				}
				if tx.ProductName == "" {
					tx.ProductName = p.Name
				}
				break
			}
		}
		ds.Transactions = append(ds.Transactions, tx)
		return nil
	})
	if err != nil {
		log.Error("Failed to record transaction",
			zap.Int64("product_id", req.ProductID),
			zap.String("type", req.Type),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to record transaction",
		})
	}

	prometheus.RecordTransactionOperation(tx.Type)
	log.Info("Transaction recorded successfully",
		zap.Int64("transaction_id", tx.ID),
		zap.Int64("product_id", tx.ProductID),
		zap.String("type", tx.Type),
		zap.Int("quantity_changed", tx.QuantityChanged),
		zap.Float64("amount", tx.Amount))
	return c.JSON(http.StatusCreated, tx)
}
