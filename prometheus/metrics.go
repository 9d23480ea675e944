package prometheus

import (
	"strconv"
	"sync"
	"time"

	"github.com/Realeboha228/wings-cafe-main/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Store operation metrics
	StoreOperationDuration prometheus.HistogramVec

	// Dataset fallback metrics
	DatasetFallbackCounter prometheus.Counter

	// Product metrics
	ProductOperationsCounter prometheus.CounterVec

	// Transaction metrics
	TransactionOperationsCounter prometheus.CounterVec

	// Inventory metrics
	ProductInventoryGauge prometheus.GaugeVec
	LowStockGauge         prometheus.Gauge

	initOnce sync.Once
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	initOnce.Do(func() {
		// Use metric prefix from configuration
		prefix := config.Metrics.Prefix

		// HTTP request metrics
		HttpRequestsTotal = *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		)

		// HTTP request duration
		HttpRequestDuration = *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		)

		// Store operation metrics
		StoreOperationDuration = *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_store_operation_duration_seconds",
				Help:    "Duration of dataset store operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation_type"},
		)

		// Dataset fallback metrics
		DatasetFallbackCounter = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_dataset_fallback_total",
				Help: "Total number of requests served from the empty dataset because the store file was unreadable",
			},
		)

		// Product metrics
		ProductOperationsCounter = *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_operations_total",
				Help: "Total number of product operations",
			},
			[]string{"operation"},
		)

		// Transaction metrics
		TransactionOperationsCounter = *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_transaction_operations_total",
				Help: "Total number of transaction operations",
			},
			[]string{"operation"},
		)

		// Product inventory metrics
		ProductInventoryGauge = *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: prefix + "_product_inventory",
				Help: "Current inventory level for products",
			},
			[]string{"product_id", "product_name", "category"},
		)

		// Low stock metrics
		LowStockGauge = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: prefix + "_low_stock_items",
				Help: "Number of products currently below the low-stock threshold",
			},
		)
	})
}

// TrackStoreOperation returns a function that records the duration of a store operation
func TrackStoreOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		StoreOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordProductOperation increments the counter for product operations
func RecordProductOperation(operation string) {
	ProductOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordTransactionOperation increments the counter for transaction operations
func RecordTransactionOperation(operation string) {
	TransactionOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordDatasetFallback increments the counter for empty-dataset fallbacks
func RecordDatasetFallback() {
	DatasetFallbackCounter.Inc()
}

// UpdateProductInventory updates the gauge for product inventory
func UpdateProductInventory(productID int64, productName string, category string, count float64) {
	ProductInventoryGauge.WithLabelValues(strconv.FormatInt(productID, 10), productName, category).Set(count)
}

// UpdateLowStockItems updates the gauge for low-stock products
func UpdateLowStockItems(count int) {
	LowStockGauge.Set(float64(count))
}
