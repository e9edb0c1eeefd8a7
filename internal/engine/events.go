package engine

import (
	"context"

	"github.com/mmynk/pricewise/internal/models"
)

// EventKind says what happened to a product.
type EventKind string

const (
	EventCreated EventKind = "created"
	EventUpdated EventKind = "updated"
	EventDeleted EventKind = "deleted"
)

// Event is delivered to listeners after a mutation is stored.
// Breakdown is nil for EventDeleted.
type Event struct {
	Kind      EventKind
	ProductID string
	Breakdown *models.Breakdown
}

// Listener is notified of every product change. Listeners run while the
// engine lock is held and must not call back into the engine.
type Listener interface {
	ProductEvent(ctx context.Context, event Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(ctx context.Context, event Event)

// ProductEvent calls f.
func (f ListenerFunc) ProductEvent(ctx context.Context, event Event) {
	f(ctx, event)
}
