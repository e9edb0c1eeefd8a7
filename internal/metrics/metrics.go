// Package metrics exposes prometheus instrumentation for RPCs and engine events.
package metrics

import (
	"context"
	"errors"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/pricewise/internal/engine"
)

const namespace = "pricewise"

// Metrics holds every collector the service records.
type Metrics struct {
	rpcRequests *prometheus.CounterVec
	rpcDuration *prometheus.HistogramVec
	events      *prometheus.CounterVec
	products    prometheus.Gauge
}

var _ engine.Listener = (*Metrics)(nil)

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "engine_events_total",
			Help:      "Product events emitted by the distribution engine.",
		}, []string{"kind"}),
		products: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "products",
			Help:      "Products currently held by the engine.",
		}),
	}
	reg.MustRegister(m.rpcRequests, m.rpcDuration, m.events, m.products)
	return m
}

// ProductEvent counts engine events and tracks the live product count.
func (m *Metrics) ProductEvent(_ context.Context, event engine.Event) {
	m.events.WithLabelValues(string(event.Kind)).Inc()
	switch event.Kind {
	case engine.EventCreated:
		m.products.Inc()
	case engine.EventDeleted:
		m.products.Dec()
	}
}

// SetProducts seeds the product gauge, e.g. from a persistent store at startup.
func (m *Metrics) SetProducts(n int) {
	m.products.Set(float64(n))
}

// Interceptor returns a Connect interceptor recording count and latency of
// every unary call.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			m.rpcDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			m.rpcRequests.WithLabelValues(procedure, codeOf(err)).Inc()
			return resp, err
		}
	}
}

func codeOf(err error) string {
	if err == nil {
		return "ok"
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr.Code().String()
	}
	return connect.CodeUnknown.String()
}
