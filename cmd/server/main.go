package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/pricewise/internal/auth"
	"github.com/mmynk/pricewise/internal/chart"
	"github.com/mmynk/pricewise/internal/config"
	"github.com/mmynk/pricewise/internal/engine"
	"github.com/mmynk/pricewise/internal/export"
	"github.com/mmynk/pricewise/internal/metrics"
	"github.com/mmynk/pricewise/internal/middleware"
	"github.com/mmynk/pricewise/internal/realtime"
	"github.com/mmynk/pricewise/internal/service"
	"github.com/mmynk/pricewise/internal/storage"
	"github.com/mmynk/pricewise/internal/storage/memory"
	"github.com/mmynk/pricewise/internal/storage/sqlite"
	"github.com/mmynk/pricewise/pkg/api/apiconnect"
	"github.com/mmynk/pricewise/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	// Auth gate
	authenticator, err := auth.NewSharedPasswordAuthenticator(cfg.AuthPassword, cfg.AuthPasswordHash)
	if err != nil {
		return fmt.Errorf("failed to initialize auth: %w", err)
	}
	jwtManager := auth.NewJWTManager(cfg.JWTSecret)

	// Engine and its listeners
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)
	charts := chart.NewRegistry()
	hub := realtime.NewHub(service.EncodeEvent, func(r *http.Request) error {
		_, err := jwtManager.Validate(r.URL.Query().Get("token"))
		return err
	})
	go hub.Run(ctx)

	eng := engine.New(store, charts, m, hub)
	if err := restoreCharts(ctx, eng, charts, m); err != nil {
		return err
	}

	mux := http.NewServeMux()

	// Register Connect services. Metrics sees every call, including ones the
	// auth gate rejects; the RPC log runs inside the gate so it has the subject.
	observe := connect.WithInterceptors(m.Interceptor())
	gated := connect.WithInterceptors(middleware.RequireAuth(jwtManager))
	logged := connect.WithInterceptors(middleware.LoggingInterceptor())

	authPath, authHandler := apiconnect.NewAuthServiceHandler(
		service.NewAuthService(authenticator, jwtManager, slog.Default()),
		observe, logged,
	)
	mux.Handle(authPath, authHandler)

	pricingPath, pricingHandler := apiconnect.NewPricingServiceHandler(
		service.NewPricingService(eng, charts),
		observe, gated, logged,
	)
	mux.Handle(pricingPath, pricingHandler)

	exportPath, exportHandler := apiconnect.NewExportServiceHandler(
		service.NewExportService(eng, export.NewExporter(charts)),
		observe, gated, logged,
	)
	mux.Handle(exportPath, exportHandler)

	mux.Handle("/ws", hub)
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	staticDir, err := filepath.Abs(cfg.StaticPath)
	if err != nil {
		return fmt.Errorf("failed to resolve static path: %w", err)
	}
	slog.Info("Serving static files", "path", staticDir)
	mux.HandleFunc("/", staticHandler(staticDir))

	// Add logging and CORS middleware, then h2c for HTTP/2 without TLS
	handler := h2c.NewHandler(loggingMiddleware(corsMiddleware(cfg.CORSOrigin, mux)), &http2.Server{})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", server.Addr, "url", fmt.Sprintf("http://localhost%s", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// openStore returns the sqlite store when a path is configured and the
// in-memory store otherwise.
func openStore(dbPath string) (storage.Store, error) {
	if dbPath == "" {
		slog.Info("Storage initialized", "backend", "memory")
		return memory.New(), nil
	}
	store, err := sqlite.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	slog.Info("Storage initialized", "backend", "sqlite", "database", dbPath)
	return store, nil
}

// restoreCharts rebuilds chart handles and the product gauge for products
// loaded from a persistent store.
func restoreCharts(ctx context.Context, eng *engine.Engine, charts *chart.Registry, m *metrics.Metrics) error {
	products, err := eng.Products(ctx)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	for _, b := range products {
		charts.Update(b.Product.ID, chart.SeriesFor(b))
	}
	m.SetProducts(len(products))
	if len(products) > 0 {
		slog.Info("Restored products", "count", len(products))
	}
	return nil
}

// staticHandler serves the renderer's files, falling back to index.html.
func staticHandler(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Unknown Connect procedures shouldn't fall through to index.html
		if strings.HasPrefix(r.URL.Path, "/"+apiconnect.Package+".") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	}
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
