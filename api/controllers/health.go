package controllers

import (
	"net/http"

	"github.com/shopverse/storefront-backend/api/responses"
	"github.com/shopverse/storefront-backend/pkg/config"
	pkgerrors "github.com/shopverse/storefront-backend/pkg/errors"
	"github.com/shopverse/storefront-backend/pkg/logger"
)

const envHeader = "X-Storefront-Env"

// CatalogReadiness is the readiness surface of the catalog service.
type CatalogReadiness interface {
	Ready() bool
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready once the catalog snapshot has loaded; carts need
// no warm-up.
func HealthReady(cfg *config.Config, logg *logger.Logger, catalog CatalogReadiness) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		if catalog == nil || !catalog.Ready() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "catalog not loaded"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
