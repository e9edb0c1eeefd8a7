// Package chart keeps one bar-chart dataset per product. A dataset is
// replaced wholesale on every product change and released when the
// product is deleted.
package chart

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mmynk/pricewise/internal/calculator"
	"github.com/mmynk/pricewise/internal/engine"
	"github.com/mmynk/pricewise/internal/models"
)

// AxisMax is the fixed upper bound of the percentage axis.
const AxisMax = 100

// Point is one bar: a role label and its percent.
type Point struct {
	Label   string
	Percent float64
}

// Handle is the chart resource bound to a product ID.
type Handle struct {
	ProductID string
	Series    []Point

	// Revision increases on every Update, starting at 1.
	Revision int
}

// Registry maps product IDs to chart handles. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	handles map[string]*Handle
}

var _ engine.Listener = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handles: make(map[string]*Handle)}
}

// SeriesFor builds the ordered (label, percent) pairs for a breakdown.
func SeriesFor(b *models.Breakdown) []Point {
	series := make([]Point, len(b.Allocations))
	for i, a := range b.Allocations {
		series[i] = Point{Label: a.Role.Name, Percent: calculator.Round2(a.Role.Percent)}
	}
	return series
}

// Update replaces the whole dataset for productID, creating the handle if
// it doesn't exist yet.
func (r *Registry) Update(productID string, series []Point) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.handles[productID]
	if !ok {
		h = &Handle{ProductID: productID}
		r.handles[productID] = h
	}
	h.Series = append([]Point(nil), series...)
	h.Revision++
}

// Destroy releases the handle for productID. It reports whether one existed.
func (r *Registry) Destroy(productID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handles[productID]; !ok {
		return false
	}
	delete(r.handles, productID)
	return true
}

// Lookup returns a copy of the handle for productID.
func (r *Registry) Lookup(productID string) (Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handles[productID]
	if !ok {
		return Handle{}, false
	}
	out := *h
	out.Series = append([]Point(nil), h.Series...)
	return out, true
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handles)
}

// ProductEvent keeps the registry in step with the engine.
func (r *Registry) ProductEvent(_ context.Context, event engine.Event) {
	switch event.Kind {
	case engine.EventCreated, engine.EventUpdated:
		r.Update(event.ProductID, SeriesFor(event.Breakdown))
	case engine.EventDeleted:
		if r.Destroy(event.ProductID) {
			slog.Debug("Chart released", "product_id", event.ProductID)
		}
	}
}
