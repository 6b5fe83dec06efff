package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/shopverse/storefront-backend/api/routes"
	"github.com/shopverse/storefront-backend/internal/cart"
	"github.com/shopverse/storefront-backend/internal/catalog"
	"github.com/shopverse/storefront-backend/pkg/config"
	"github.com/shopverse/storefront-backend/pkg/logger"
	"github.com/shopverse/storefront-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	source, err := catalog.NewSourceClient(cfg.Catalog)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog source client", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(source)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	refreshCatalog(context.Background(), logg, catalogService, cfg.Catalog.FetchTimeout)
	if cfg.Catalog.RefreshInterval > 0 {
		go refreshLoop(logg, catalogService, cfg.Catalog)
	}

	cartRegistry := cart.NewRegistry()

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(promRegistry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, catalogService, cartRegistry, promRegistry, httpMetrics),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

// refreshCatalog pulls a fresh snapshot. A failed pull is logged and the
// previous snapshot stays in place; readiness reports the truth either way.
func refreshCatalog(ctx context.Context, logg *logger.Logger, svc *catalog.Service, timeout time.Duration) {
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	report, err := svc.Refresh(fetchCtx)
	if err != nil {
		logg.Error(ctx, "catalog refresh failed", err)
		return
	}

	ctx = logg.WithFields(ctx, map[string]any{
		"loaded":  report.Loaded,
		"dropped": report.Dropped,
	})
	if report.Invalid != nil {
		logg.Warn(logg.WithField(ctx, "invalid", report.Invalid.Error()), "catalog refreshed with invalid records dropped")
		return
	}
	logg.Info(ctx, "catalog refreshed")
}

func refreshLoop(logg *logger.Logger, svc *catalog.Service, cfg config.CatalogConfig) {
	ticker := time.NewTicker(cfg.RefreshInterval)
	defer ticker.Stop()
	for range ticker.C {
		refreshCatalog(context.Background(), logg, svc, cfg.FetchTimeout)
	}
}
