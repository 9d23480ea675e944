package model

import "time"

// Transaction types recorded in the dataset.
const (
	TransactionTypeSale    = "sale"
	TransactionTypeRestock = "restock"
)

// Product represents a sellable inventory item.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// Transaction is an append-only log entry for a stock-affecting event.
// ProductName is a snapshot of the product's name at transaction time;
// the ProductID reference is not enforced and can outlive its product.
type Transaction struct {
	ID              int64     `json:"id"`
	ProductID       int64     `json:"productId"`
	ProductName     string    `json:"productName"`
	Type            string    `json:"type"`
	QuantityChanged int       `json:"quantityChanged"`
	Amount          float64   `json:"amount"`
	Date            time.Time `json:"date"`
}

// Dataset is the full persisted collection: one JSON document with
// exactly two top-level arrays.
type Dataset struct {
	Products     []Product     `json:"products"`
	Transactions []Transaction `json:"transactions"`
}

// NewDataset returns an empty dataset with non-nil slices so that both
// the persisted document and API responses serialize as [] rather than null.
func NewDataset() Dataset {
	return Dataset{
		Products:     []Product{},
		Transactions: []Transaction{},
	}
}

// Normalize replaces nil slices with empty ones after decoding.
func (d *Dataset) Normalize() {
	if d.Products == nil {
		d.Products = []Product{}
	}
	if d.Transactions == nil {
		d.Transactions = []Transaction{}
	}
}
