package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is a catalog listing as supplied by the upstream catalog API.
// The service never mutates products; it only filters and orders them.
type Product struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Rating      float64         `json:"rating"`
	Category    string          `json:"category"`
	Brand       string          `json:"brand"`
	Stock       int             `json:"stock"`
	Thumbnail   string          `json:"thumbnail"`
}

// Validate rejects records the storefront cannot render or price.
func (p Product) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("product id must be positive, got %d", p.ID)
	}
	if p.Title == "" {
		return fmt.Errorf("product %d has no title", p.ID)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("product %d has negative price %s", p.ID, p.Price)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("product %d rating %.2f outside [0,5]", p.ID, p.Rating)
	}
	if p.Stock < 0 {
		return fmt.Errorf("product %d has negative stock %d", p.ID, p.Stock)
	}
	return nil
}
