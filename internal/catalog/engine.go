package catalog

import (
	"sort"

	pkgerrors "github.com/shopverse/storefront-backend/pkg/errors"
	"github.com/shopverse/storefront-backend/pkg/enums"
)

// Result is one page of a catalog query.
type Result struct {
	Products   []Product `json:"products"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
}

// Query filters, orders, and pages the given product set. The pipeline order
// is fixed: category filter, brand filter, price filter, stable sort, slice.
// Resetting page to 1 when criteria change is the caller's contract; the
// engine takes page explicitly and remembers nothing between calls.
func Query(products []Product, criteria Criteria, page, pageSize int) (Result, error) {
	if pageSize <= 0 {
		return Result{}, pkgerrors.New(pkgerrors.CodeValidation, "page size must be positive")
	}
	if page < 1 {
		return Result{}, pkgerrors.New(pkgerrors.CodeValidation, "page must be at least 1")
	}

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if criteria.matches(p) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, criteria.SortKey)

	totalPages := (len(filtered) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Result{
		Products:   filtered[start:end],
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// sortProducts orders in place. The sort must be stable so that SortKeyNone
// preserves upstream order and ties keep their relative positions.
func sortProducts(products []Product, key enums.SortKey) {
	switch key {
	case enums.SortKeyPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.Cmp(products[j].Price) < 0
		})
	case enums.SortKeyPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.Cmp(products[j].Price) > 0
		})
	case enums.SortKeyRatingDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	}
}

// Facets lists the distinct categories and brands present in the product
// set, in first-seen order, for the filter sidebar.
type Facets struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
}

func CollectFacets(products []Product) Facets {
	facets := Facets{
		Categories: []string{},
		Brands:     []string{},
	}
	seenCategories := map[string]struct{}{}
	seenBrands := map[string]struct{}{}
	for _, p := range products {
		if _, ok := seenCategories[p.Category]; !ok && p.Category != "" {
			seenCategories[p.Category] = struct{}{}
			facets.Categories = append(facets.Categories, p.Category)
		}
		if _, ok := seenBrands[p.Brand]; !ok && p.Brand != "" {
			seenBrands[p.Brand] = struct{}{}
			facets.Brands = append(facets.Brands, p.Brand)
		}
	}
	return facets
}
