package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shopverse/storefront-backend/api/controllers"
	"github.com/shopverse/storefront-backend/api/middleware"
	"github.com/shopverse/storefront-backend/internal/cart"
	"github.com/shopverse/storefront-backend/internal/catalog"
	"github.com/shopverse/storefront-backend/pkg/config"
	"github.com/shopverse/storefront-backend/pkg/logger"
	"github.com/shopverse/storefront-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	catalogService *catalog.Service,
	cartRegistry *cart.Registry,
	promRegistry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, catalogService))
	})

	if cfg.Metrics.Enabled && promRegistry != nil {
		r.Method(http.MethodGet, cfg.Metrics.Path, promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(catalogService, logg))
			r.Get("/facets", controllers.ProductFacets(catalogService, logg))
			r.Get("/{productId}", controllers.GetProduct(catalogService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartRegistry, logg))
			r.Route("/items", func(r chi.Router) {
				r.Post("/", controllers.CartAddItem(cartRegistry, catalogService, logg))
				r.Patch("/{productId}", controllers.CartUpdateQuantity(cartRegistry, logg))
				r.Delete("/{productId}", controllers.CartRemoveItem(cartRegistry, logg))
			})
		})
	})

	return r
}
