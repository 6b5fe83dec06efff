package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shopverse/storefront-backend/api/responses"
	"github.com/shopverse/storefront-backend/api/validators"
	"github.com/shopverse/storefront-backend/internal/catalog"
	pkgerrors "github.com/shopverse/storefront-backend/pkg/errors"
	"github.com/shopverse/storefront-backend/pkg/enums"
	"github.com/shopverse/storefront-backend/pkg/logger"
)

// CatalogService is the catalog surface the product controllers consume.
type CatalogService interface {
	Query(criteria catalog.Criteria, page, pageSize int) (catalog.Result, error)
	Facets() catalog.Facets
	GetProduct(id int64) (catalog.Product, error)
}

// ListProducts serves the filtered, sorted, paginated product grid.
// Resetting page to 1 after a criteria change is the storefront's contract;
// this endpoint always pages exactly what it is asked for.
func ListProducts(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		criteria, err := criteriaFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := validators.ParseQueryInt(r, "page", 1, 1, 1_000_000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		pageSize, err := validators.ParseQueryInt(r, "page_size", catalog.DefaultPageSize, 1, catalog.MaxPageSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Query(criteria, page, pageSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// ProductFacets serves the distinct category and brand lists the filter
// sidebar is built from.
func ProductFacets(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Facets())
	}
}

// GetProduct serves a single product for the quick-view modal.
func GetProduct(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := productIDFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.GetProduct(id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

func criteriaFromQuery(r *http.Request) (catalog.Criteria, error) {
	criteria := catalog.DefaultCriteria()

	query := r.URL.Query()
	criteria.Categories = query["category"]
	criteria.Brands = query["brand"]

	priceMin, err := validators.ParseQueryDecimal(r, "price_min", catalog.DefaultPriceMin)
	if err != nil {
		return catalog.Criteria{}, err
	}
	priceMax, err := validators.ParseQueryDecimal(r, "price_max", catalog.DefaultPriceMax)
	if err != nil {
		return catalog.Criteria{}, err
	}
	if priceMin.Cmp(priceMax) > 0 {
		return catalog.Criteria{}, pkgerrors.New(pkgerrors.CodeValidation, "price_min must not exceed price_max")
	}
	criteria.PriceMin = priceMin
	criteria.PriceMax = priceMax

	sortKey, err := enums.ParseSortKey(query.Get("sort"))
	if err != nil {
		return catalog.Criteria{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort key")
	}
	criteria.SortKey = sortKey

	return criteria, nil
}

func productIDFromURL(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "productId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id")
	}
	return id, nil
}
