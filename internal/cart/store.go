package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/shopverse/storefront-backend/internal/catalog"
)

// Line is one product's entry in a cart. UnitPrice is snapshotted when the
// product is first added; later catalog price changes never touch existing
// lines.
type Line struct {
	ProductID int64           `json:"product_id"`
	Title     string          `json:"title"`
	Thumbnail string          `json:"thumbnail"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Snapshot is the cart view handed to the UI: lines in first-add order plus
// the derived total and item count.
type Snapshot struct {
	Lines []Line          `json:"lines"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// Store owns the cart lines for one shopper. It maintains two invariants:
// at most one line per product id, and every line's quantity is at least 1
// (an update to zero or below removes the line). All operations are
// synchronous and guarded by a single mutex, since the HTTP host invokes the
// store from many goroutines.
type Store struct {
	mu    sync.Mutex
	lines map[int64]*Line
	order []int64
}

func NewStore() *Store {
	return &Store{
		lines: make(map[int64]*Line),
	}
}

// Add puts the product in the cart with the given quantity, snapshotting the
// current catalog price. Quantities below 1 are clamped to 1. If a line for
// the product already exists its quantity is replaced, not incremented: the
// storefront's ADD button always sends 1, and steppers go through
// UpdateQuantity.
func (s *Store) Add(p catalog.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if line, ok := s.lines[p.ID]; ok {
		line.Quantity = quantity
		return
	}

	s.lines[p.ID] = &Line{
		ProductID: p.ID,
		Title:     p.Title,
		Thumbnail: p.Thumbnail,
		UnitPrice: p.Price,
		Quantity:  quantity,
	}
	s.order = append(s.order, p.ID)
}

// UpdateQuantity sets the line's quantity. A quantity of zero or below
// removes the line entirely. Updating a product that is not in the cart is a
// no-op, not a fault: the UI only issues updates for lines it rendered, and
// a stale click must not crash the view.
func (s *Store) UpdateQuantity(productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.lines[productID]
	if !ok {
		return
	}
	if quantity <= 0 {
		s.removeLocked(productID)
		return
	}
	line.Quantity = quantity
}

// Remove deletes the line if present. Idempotent.
func (s *Store) Remove(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

func (s *Store) removeLocked(productID int64) {
	if _, ok := s.lines[productID]; !ok {
		return
	}
	delete(s.lines, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Quantity returns the line's quantity, or 0 when the product is not in the
// cart. The UI uses this to decide between the ADD button and a stepper.
func (s *Store) Quantity(productID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if line, ok := s.lines[productID]; ok {
		return line.Quantity
	}
	return 0
}

// Total returns the exact sum of unit price times quantity over all lines.
// Rounding happens at presentation time only.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

func (s *Store) totalLocked() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Count returns the total number of items across all lines, for the cart
// badge.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countLocked()
}

func (s *Store) countLocked() int {
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Snapshot returns a consistent copy of the cart in first-add order.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]Line, 0, len(s.order))
	for _, id := range s.order {
		lines = append(lines, *s.lines[id])
	}
	return Snapshot{
		Lines: lines,
		Total: s.totalLocked(),
		Count: s.countLocked(),
	}
}
