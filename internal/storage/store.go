// Package storage provides abstractions for product storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/pricewise/internal/models"
)

// ErrNotFound is returned (possibly wrapped) when a product doesn't exist.
var ErrNotFound = errors.New("product not found")

// Store defines the interface for product storage operations.
// This abstraction allows swapping storage backends (in-memory, SQLite)
// without changing the engine.
//
// Implementations must keep products in insertion order and roles in the
// order they appear in Product.Roles.
type Store interface {
	// CreateProduct persists a new product. The caller assigns the ID.
	CreateProduct(ctx context.Context, product *models.Product) error

	// GetProduct retrieves a product by its ID.
	// Returns an error wrapping ErrNotFound if the product doesn't exist.
	GetProduct(ctx context.Context, productID string) (*models.Product, error)

	// ListProducts returns every product in insertion order.
	ListProducts(ctx context.Context) ([]*models.Product, error)

	// UpdateProduct replaces the stored product, including its roles.
	// Returns an error wrapping ErrNotFound if the product doesn't exist.
	UpdateProduct(ctx context.Context, product *models.Product) error

	// DeleteProduct removes a product.
	// Returns an error wrapping ErrNotFound if the product doesn't exist.
	DeleteProduct(ctx context.Context, productID string) error

	// Close releases any resources held by the store.
	Close() error
}
