// Package memory provides a process-lifetime implementation of storage.Store.
// Everything is lost when the process exits.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mmynk/pricewise/internal/models"
	"github.com/mmynk/pricewise/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps products in a slice (insertion order) with an index by ID.
type Store struct {
	mu       sync.RWMutex
	products []*models.Product
	index    map[string]int
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{index: make(map[string]int)}
}

// CreateProduct appends a copy of product.
func (s *Store) CreateProduct(ctx context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[product.ID]; ok {
		return fmt.Errorf("product already exists: %s", product.ID)
	}
	s.index[product.ID] = len(s.products)
	s.products = append(s.products, product.Clone())
	return nil
}

// GetProduct returns a copy of the stored product.
func (s *Store) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[productID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, productID)
	}
	return s.products[i].Clone(), nil
}

// ListProducts returns copies of every product in insertion order.
func (s *Store) ListProducts(ctx context.Context) ([]*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out, nil
}

// UpdateProduct replaces the stored product in place.
func (s *Store) UpdateProduct(ctx context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[product.ID]
	if !ok {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, product.ID)
	}
	s.products[i] = product.Clone()
	return nil
}

// DeleteProduct removes a product without reordering the others.
func (s *Store) DeleteProduct(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[productID]
	if !ok {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, productID)
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	delete(s.index, productID)
	for j := i; j < len(s.products); j++ {
		s.index[s.products[j].ID] = j
	}
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}
