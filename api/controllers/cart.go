package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/shopverse/storefront-backend/api/responses"
	"github.com/shopverse/storefront-backend/api/validators"
	"github.com/shopverse/storefront-backend/internal/cart"
	"github.com/shopverse/storefront-backend/internal/catalog"
	pkgerrors "github.com/shopverse/storefront-backend/pkg/errors"
	"github.com/shopverse/storefront-backend/pkg/logger"
)

const cartTokenHeader = "X-Cart-Token"

// ProductLookup resolves products for cart price snapshots.
type ProductLookup interface {
	GetProduct(id int64) (catalog.Product, error)
}

// CartFetch returns the cart snapshot for the caller's token, issuing a
// fresh cart when the token is absent or unknown.
func CartFetch(registry *cart.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := resolveCart(w, r, registry, logg)
		responses.WriteSuccess(w, store.Snapshot())
	}
}

type addItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,min=1"`
	Quantity  int   `json:"quantity" validate:"omitempty,min=1"`
}

// CartAddItem adds a product with a price snapshot taken from the catalog at
// call time. The quantity defaults to 1, matching the storefront's ADD
// button.
func CartAddItem(registry *cart.Registry, products ProductLookup, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if products == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if payload.Quantity == 0 {
			payload.Quantity = 1
		}

		product, err := products.GetProduct(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store := resolveCart(w, r, registry, logg)
		store.Add(product, payload.Quantity)

		responses.WriteSuccessStatus(w, http.StatusCreated, store.Snapshot())
	}
}

type updateQuantityRequest struct {
	// Pointer so that an explicit zero (remove the line) survives decoding.
	Quantity *int `json:"quantity" validate:"required"`
}

// CartUpdateQuantity sets a line's quantity; zero or below removes the line.
// Updates for products not in the cart are benign no-ops.
func CartUpdateQuantity(registry *cart.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := productIDFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store := resolveCart(w, r, registry, logg)
		store.UpdateQuantity(id, *payload.Quantity)

		responses.WriteSuccess(w, store.Snapshot())
	}
}

// CartRemoveItem deletes a line. Idempotent: removing an absent line is a
// success.
func CartRemoveItem(registry *cart.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := productIDFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store := resolveCart(w, r, registry, logg)
		store.Remove(id)

		responses.WriteSuccess(w, store.Snapshot())
	}
}

// resolveCart maps the request's cart token to its store. A missing,
// malformed, or unknown token yields a fresh cart rather than an error; the
// response always carries the authoritative token.
func resolveCart(w http.ResponseWriter, r *http.Request, registry *cart.Registry, logg *logger.Logger) *cart.Store {
	token, store := lookupOrIssue(r, registry)
	w.Header().Set(cartTokenHeader, token.String())
	if logg != nil {
		logg.Info(logg.WithCartToken(r.Context(), token.String()), "cart.resolved")
	}
	return store
}

func lookupOrIssue(r *http.Request, registry *cart.Registry) (uuid.UUID, *cart.Store) {
	if raw := r.Header.Get(cartTokenHeader); raw != "" {
		if token, err := uuid.Parse(raw); err == nil {
			if store, ok := registry.Lookup(token); ok {
				return token, store
			}
		}
	}
	return registry.Issue()
}
