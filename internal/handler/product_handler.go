package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Realeboha228/wings-cafe-main/internal/model"
	"github.com/Realeboha228/wings-cafe-main/internal/store"
	"github.com/Realeboha228/wings-cafe-main/pkg/logger"
	"github.com/Realeboha228/wings-cafe-main/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductRequest defines the structure for product creation requests
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// ProductUpdateRequest carries a partial product update. Only the supplied
// fields replace the stored ones; absent fields are retained.
type ProductUpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
}

// ListProducts handles retrieving all products in store order
func ListProducts(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Listing products")

	ds := loadDataset(c)

	log.Info("Products retrieved successfully", zap.Int("count", len(ds.Products)))
	return c.JSON(http.StatusOK, ds.Products)
}

// GetProduct handles retrieving a single product by ID
func GetProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	id, err := parseID(c)
	if err != nil {
		log.Warn("Invalid product id", zap.String("product_id", c.Param("id")))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}
	log.Info("Getting product by ID", zap.Int64("product_id", id))

	ds := loadDataset(c)
	for _, p := range ds.Products {
		if p.ID == id {
			log.Info("Product retrieved successfully",
				zap.Int64("product_id", id),
				zap.String("product_name", p.Name))
			return c.JSON(http.StatusOK, p)
		}
	}

	log.Warn("Product not found", zap.Int64("product_id", id))
	return c.JSON(http.StatusNotFound, echo.Map{
		"error": "Product not found",
	})
}

// CreateProduct handles creating a new product
func CreateProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Creating new product")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request body", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid JSON",
		})
	}

	product := model.Product{
		ID:          store.NextID(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
	}

	defer prometheus.TrackStoreOperation("create_product")(time.Now())
	err := store.Get().Mutate(func(ds *model.Dataset) error {
		ds.Products = append(ds.Products, product)
		return nil
	})
	if err != nil {
		log.Error("Failed to create product",
			zap.String("name", req.Name),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create product",
		})
	}

	prometheus.RecordProductOperation("create")
	prometheus.UpdateProductInventory(product.ID, product.Name, product.Category, float64(product.Quantity))
	log.Info("Product created successfully",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Float64("price", product.Price),
		zap.Int("quantity", product.Quantity))
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles merging the supplied fields into an existing product
func UpdateProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	id, err := parseID(c)
	if err != nil {
		log.Warn("Invalid product id", zap.String("product_id", c.Param("id")))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}
	log.Info("Updating product", zap.Int64("product_id", id))

	var req ProductUpdateRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request body",
			zap.Int64("product_id", id),
			zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid JSON",
		})
	}

	var updated model.Product
	defer prometheus.TrackStoreOperation("update_product")(time.Now())
	err = store.Get().Mutate(func(ds *model.Dataset) error {
		for i := range ds.Products {
			if ds.Products[i].ID != id {
				continue
			}
			p := &ds.Products[i]
			if req.Name != nil {
				p.Name = *req.Name
			}
			if req.Description != nil {
				p.Description = *req.Description
			}
			if req.Category != nil {
				p.Category = *req.Category
			}
			if req.Price != nil {
				p.Price = *req.Price
			}
			if req.Quantity != nil {
				p.Quantity = *req.Quantity
			}
			updated = *p
			return nil
		}
		return errProductNotFound
	})
	if errors.Is(err, errProductNotFound) {
		log.Warn("Product not found for update", zap.Int64("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}
	if err != nil {
		log.Error("Failed to update product",
			zap.Int64("product_id", id),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update product",
		})
	}

	prometheus.RecordProductOperation("update")
	prometheus.UpdateProductInventory(updated.ID, updated.Name, updated.Category, float64(updated.Quantity))
	log.Info("Product updated successfully",
		zap.Int64("product_id", updated.ID),
		zap.String("name", updated.Name),
		zap.Float64("price", updated.Price),
		zap.Int("quantity", updated.Quantity))
	return c.JSON(http.StatusOK, updated)
}

// DeleteProduct handles deleting a product
func DeleteProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	id, err := parseID(c)
	if err != nil {
		log.Warn("Invalid product id", zap.String("product_id", c.Param("id")))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}
	log.Info("Deleting product", zap.Int64("product_id", id))

	defer prometheus.TrackStoreOperation("delete_product")(time.Now())
	err = store.Get().Mutate(func(ds *model.Dataset) error {
		for i := range ds.Products {
			if ds.Products[i].ID == id {
				ds.Products = append(ds.Products[:i], ds.Products[i+1:]...)
				return nil
			}
		}
		return errProductNotFound
	})
	if errors.Is(err, errProductNotFound) {
		log.Warn("Product not found for deletion", zap.Int64("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}
	if err != nil {
		log.Error("Failed to delete product",
			zap.Int64("product_id", id),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete product",
		})
	}

	prometheus.RecordProductOperation("delete")
	log.Info("Product deleted successfully", zap.Int64("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Product deleted",
	})
}
