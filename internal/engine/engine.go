// Package engine implements the distribution engine: it owns products and
// their roles, enforces the percentage clamps and recomputes every derived
// value after a change.
//
// Every operation runs to completion under one lock, so callers observe
// mutations in a single total order. Listeners (charts, metrics, live
// renderers) are told about each change before the operation returns.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/pricewise/internal/calculator"
	"github.com/mmynk/pricewise/internal/models"
	"github.com/mmynk/pricewise/internal/storage"
)

// Engine is the distribution engine. It is safe for concurrent use.
type Engine struct {
	mu        sync.Mutex
	store     storage.Store
	listeners []Listener
	handlers  map[Action]commandFunc

	now   func() time.Time
	newID func() string
}

// New creates an engine backed by store. Listeners receive every event.
func New(store storage.Store, listeners ...Listener) *Engine {
	e := &Engine{
		store:     store,
		listeners: listeners,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
	e.handlers = e.commandTable()
	return e
}

// Subscribe adds a listener for all subsequent events.
func (e *Engine) Subscribe(l Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, l)
}

// CreateProduct adds a product with a fresh ID and the base role template.
// Price is clamped to ≥ 0, discount and commission to [0, 100] each; their
// sum is not validated.
func (e *Engine) CreateProduct(ctx context.Context, name string, price, discount, commission float64) (*models.Breakdown, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	product := &models.Product{
		ID:         e.newID(),
		Name:       name,
		Price:      calculator.ClampPrice(price),
		Discount:   calculator.ClampPercent(discount),
		Commission: calculator.ClampPercent(commission),
		Roles:      models.BaseRoles(),
		CreatedAt:  e.now().Unix(),
	}

	if err := e.store.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	breakdown := calculator.Summarize(product)
	e.notify(ctx, Event{Kind: EventCreated, ProductID: product.ID, Breakdown: breakdown})

	slog.Info("Product created",
		"product_id", product.ID,
		"name", product.Name,
		"available_percent", breakdown.AvailablePercent,
		"final_price", breakdown.FinalPrice,
	)
	return breakdown, nil
}

// Product returns the current breakdown of one product.
func (e *Engine) Product(ctx context.Context, productID string) (*models.Breakdown, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	product, err := e.load(ctx, productID)
	if err != nil {
		return nil, err
	}
	return calculator.Summarize(product), nil
}

// Products returns every product's breakdown in insertion order.
func (e *Engine) Products(ctx context.Context) ([]*models.Breakdown, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	products, err := e.store.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	out := make([]*models.Breakdown, len(products))
	for i, p := range products {
		out[i] = calculator.Summarize(p)
	}
	return out, nil
}

// DeleteProduct removes a product. Deleting a missing product is a no-op.
func (e *Engine) DeleteProduct(ctx context.Context, productID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	err := e.store.DeleteProduct(ctx, productID)
	if errors.Is(err, storage.ErrNotFound) {
		slog.Debug("DeleteProduct: product already gone", "product_id", productID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	e.notify(ctx, Event{Kind: EventDeleted, ProductID: productID})
	slog.Info("Product deleted", "product_id", productID)
	return nil
}

// AddRole appends a custom role with percent 0. The ID is derived from the
// name, so names differing only in case or spacing collide. Existing
// percentages are left alone.
func (e *Engine) AddRole(ctx context.Context, productID, roleName string) (*models.Role, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	name := strings.TrimSpace(roleName)
	if name == "" {
		return nil, ErrEmptyName
	}

	product, err := e.load(ctx, productID)
	if err != nil {
		return nil, err
	}

	role := models.Role{ID: RoleID(name), Name: name}
	if product.RoleIndex(role.ID) != -1 {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateRole, role.ID)
	}

	product.Roles = append(product.Roles, role)
	if _, err := e.save(ctx, product); err != nil {
		return nil, err
	}
	return &role, nil
}

// DeleteRole removes a custom role. Its percent is not redistributed; it
// simply becomes part of the remaining budget.
func (e *Engine) DeleteRole(ctx context.Context, productID, roleID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if models.IsBaseRole(roleID) {
		return fmt.Errorf("%w: %s", ErrProtectedRole, roleID)
	}

	product, err := e.load(ctx, productID)
	if err != nil {
		return err
	}

	i := product.RoleIndex(roleID)
	if i == -1 {
		return fmt.Errorf("%w: %s", ErrRoleNotFound, roleID)
	}
	product.Roles = append(product.Roles[:i], product.Roles[i+1:]...)

	_, err = e.save(ctx, product)
	return err
}

// SetRolePercent clamps raw into [0, availablePercent] against the current
// available percent and stores it rounded to 2 places. Other roles are not
// re-clamped, so their sum may exceed the budget; the remaining percent in
// the returned breakdown is recomputed over all roles and goes negative in
// that case.
func (e *Engine) SetRolePercent(ctx context.Context, productID, roleID string, raw float64) (*models.Breakdown, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	product, err := e.load(ctx, productID)
	if err != nil {
		return nil, err
	}

	i := product.RoleIndex(roleID)
	if i == -1 {
		return nil, fmt.Errorf("%w: %s", ErrRoleNotFound, roleID)
	}

	available := calculator.AvailablePercent(product.Discount, product.Commission)
	product.Roles[i].Percent = calculator.ClampRolePercent(raw, available)

	return e.save(ctx, product)
}

// UpdateDiscount sets the discount, clamped to [0, 100]. Role percents are
// not re-clamped against the new available percent.
func (e *Engine) UpdateDiscount(ctx context.Context, productID string, value float64) (*models.Breakdown, error) {
	return e.updatePricing(ctx, productID, func(p *models.Product) {
		p.Discount = calculator.ClampPercent(value)
	})
}

// UpdateCommission sets the commission, clamped to [0, 100]. Role percents
// are not re-clamped against the new available percent.
func (e *Engine) UpdateCommission(ctx context.Context, productID string, value float64) (*models.Breakdown, error) {
	return e.updatePricing(ctx, productID, func(p *models.Product) {
		p.Commission = calculator.ClampPercent(value)
	})
}

func (e *Engine) updatePricing(ctx context.Context, productID string, apply func(*models.Product)) (*models.Breakdown, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	product, err := e.load(ctx, productID)
	if err != nil {
		return nil, err
	}
	apply(product)
	return e.save(ctx, product)
}

// load must be called with e.mu held.
func (e *Engine) load(ctx context.Context, productID string) (*models.Product, error) {
	product, err := e.store.GetProduct(ctx, productID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	return product, nil
}

// save must be called with e.mu held.
func (e *Engine) save(ctx context.Context, product *models.Product) (*models.Breakdown, error) {
	if err := e.store.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, product.ID)
		}
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	breakdown := calculator.Summarize(product)
	e.notify(ctx, Event{Kind: EventUpdated, ProductID: product.ID, Breakdown: breakdown})

	slog.Debug("Product updated",
		"product_id", product.ID,
		"remaining_percent", breakdown.RemainingPercent,
		"over_allocated", breakdown.OverAllocated,
	)
	return breakdown, nil
}

func (e *Engine) notify(ctx context.Context, event Event) {
	for _, l := range e.listeners {
		l.ProductEvent(ctx, event)
	}
}
