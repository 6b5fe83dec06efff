package enums

import "fmt"

// SortKey selects the catalog query ordering.
type SortKey string

const (
	SortKeyNone       SortKey = "none"
	SortKeyPriceAsc   SortKey = "price-asc"
	SortKeyPriceDesc  SortKey = "price-desc"
	SortKeyRatingDesc SortKey = "rating-desc"
)

var validSortKeys = []SortKey{
	SortKeyNone,
	SortKeyPriceAsc,
	SortKeyPriceDesc,
	SortKeyRatingDesc,
}

// String implements fmt.Stringer.
func (s SortKey) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortKey.
func (s SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortKey converts raw input into a SortKey. The empty string and the
// storefront's legacy "rating" value are accepted for compatibility with
// existing clients.
func ParseSortKey(value string) (SortKey, error) {
	switch value {
	case "":
		return SortKeyNone, nil
	case "rating":
		return SortKeyRatingDesc, nil
	}
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}
