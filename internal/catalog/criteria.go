package catalog

import (
	"github.com/shopspring/decimal"
	"github.com/shopverse/storefront-backend/pkg/enums"
)

// Fixed storefront constants. The product grid always shows six cards per
// page and the price slider spans [0, 1000].
const (
	DefaultPageSize = 6
	MaxPageSize     = 100
)

var (
	DefaultPriceMin = decimal.Zero
	DefaultPriceMax = decimal.NewFromInt(1000)
)

// Criteria is the combined filter/sort selection for one query. It is a
// value object rebuilt by the caller on every request; the engine keeps no
// copy of it.
type Criteria struct {
	// Categories and Brands restrict matches when non-empty. An empty set
	// means "no restriction", not "match nothing".
	Categories []string
	Brands     []string
	// PriceMin and PriceMax bound matches inclusively and are always applied.
	PriceMin decimal.Decimal
	PriceMax decimal.Decimal
	SortKey  enums.SortKey
}

// DefaultCriteria matches every product over the full price domain.
func DefaultCriteria() Criteria {
	return Criteria{
		PriceMin: DefaultPriceMin,
		PriceMax: DefaultPriceMax,
		SortKey:  enums.SortKeyNone,
	}
}

func (c Criteria) matches(p Product) bool {
	if len(c.Categories) > 0 && !containsString(c.Categories, p.Category) {
		return false
	}
	if len(c.Brands) > 0 && !containsString(c.Brands, p.Brand) {
		return false
	}
	if p.Price.Cmp(c.PriceMin) < 0 || p.Price.Cmp(c.PriceMax) > 0 {
		return false
	}
	return true
}

func containsString(set []string, value string) bool {
	for _, candidate := range set {
		if candidate == value {
			return true
		}
	}
	return false
}
