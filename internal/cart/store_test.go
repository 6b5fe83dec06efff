package cart

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shopverse/storefront-backend/internal/catalog"
)

func testProduct(id int64, price float64) catalog.Product {
	return catalog.Product{
		ID:        id,
		Title:     "product",
		Price:     decimal.NewFromFloat(price),
		Thumbnail: "https://cdn/p.jpg",
	}
}

func TestAddThenUpdateQuantityTotal(t *testing.T) {
	store := NewStore()
	store.Add(testProduct(1, 10), 1)
	store.UpdateQuantity(1, 3)

	if got := store.Total(); !got.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("expected total 30, got %s", got)
	}
	if got := store.Count(); got != 3 {
		t.Fatalf("expected count 3, got %d", got)
	}
}

func TestAddReplacesQuantityForExistingLine(t *testing.T) {
	store := NewStore()
	store.Add(testProduct(1, 10), 2)
	store.Add(testProduct(1, 10), 5)

	if got := store.Quantity(1); got != 5 {
		t.Fatalf("add must replace the quantity, got %d", got)
	}
	if got := len(store.Snapshot().Lines); got != 1 {
		t.Fatalf("expected a single line per product, got %d", got)
	}
}

func TestAddClampsQuantityToOne(t *testing.T) {
	store := NewStore()
	store.Add(testProduct(1, 10), -4)

	if got := store.Quantity(1); got != 1 {
		t.Fatalf("expected clamped quantity 1, got %d", got)
	}
}

func TestAddSnapshotsPriceAtAddTime(t *testing.T) {
	store := NewStore()
	p := testProduct(1, 10)
	store.Add(p, 1)

	// A later catalog price change must not affect the existing line.
	p.Price = decimal.NewFromInt(99)
	store.Add(testProduct(2, 5), 1)

	snapshot := store.Snapshot()
	if !snapshot.Lines[0].UnitPrice.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected snapshotted price 10, got %s", snapshot.Lines[0].UnitPrice)
	}
}

func TestUpdateQuantityToZeroRemovesLine(t *testing.T) {
	store := NewStore()
	store.Add(testProduct(1, 10), 2)

	store.UpdateQuantity(1, 0)
	if got := store.Quantity(1); got != 0 {
		t.Fatalf("expected line removed, quantity %d", got)
	}
	if got := len(store.Snapshot().Lines); got != 0 {
		t.Fatalf("expected no lines, got %d", got)
	}

	store.Add(testProduct(2, 5), 1)
	store.UpdateQuantity(2, -3)
	if got := len(store.Snapshot().Lines); got != 0 {
		t.Fatalf("negative quantity must remove the line, got %d lines", got)
	}
}

func TestUpdateQuantityOnMissingLineIsNoop(t *testing.T) {
	store := NewStore()
	store.UpdateQuantity(1, 0)

	snapshot := store.Snapshot()
	if len(snapshot.Lines) != 0 || !snapshot.Total.IsZero() {
		t.Fatalf("expected empty cart, got %+v", snapshot)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	store := NewStore()
	store.Add(testProduct(1, 10), 2)
	store.Add(testProduct(2, 5), 1)

	store.Remove(1)
	once := store.Snapshot()
	store.Remove(1)
	twice := store.Snapshot()

	if len(once.Lines) != len(twice.Lines) || !once.Total.Equal(twice.Total) {
		t.Fatalf("double remove diverged: %+v vs %+v", once, twice)
	}
	if once.Lines[0].ProductID != 2 {
		t.Fatalf("wrong line removed: %+v", once)
	}
}

func TestSnapshotPreservesFirstAddOrder(t *testing.T) {
	store := NewStore()
	store.Add(testProduct(3, 1), 1)
	store.Add(testProduct(1, 1), 1)
	store.Add(testProduct(2, 1), 1)
	// Re-adding must not move the line to the back.
	store.Add(testProduct(3, 1), 4)

	snapshot := store.Snapshot()
	want := []int64{3, 1, 2}
	for i, id := range want {
		if snapshot.Lines[i].ProductID != id {
			t.Fatalf("unexpected order %+v", snapshot.Lines)
		}
	}
}

func TestTotalMatchesLedgerUnderRandomizedOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	store := NewStore()
	expected := map[int64]struct {
		price decimal.Decimal
		qty   int
	}{}

	products := make([]catalog.Product, 10)
	for i := range products {
		products[i] = testProduct(int64(i+1), float64(rng.Intn(5000))/100)
	}

	for step := 0; step < 500; step++ {
		p := products[rng.Intn(len(products))]
		switch rng.Intn(3) {
		case 0:
			qty := rng.Intn(6) - 1 // may be clamped
			store.Add(p, qty)
			if qty < 1 {
				qty = 1
			}
			entry := expected[p.ID]
			if entry.qty == 0 {
				entry.price = p.Price
			}
			entry.qty = qty
			expected[p.ID] = entry
		case 1:
			qty := rng.Intn(8) - 2 // may remove
			if _, ok := expected[p.ID]; ok {
				store.UpdateQuantity(p.ID, qty)
				if qty <= 0 {
					delete(expected, p.ID)
				} else {
					entry := expected[p.ID]
					entry.qty = qty
					expected[p.ID] = entry
				}
			} else {
				store.UpdateQuantity(p.ID, qty)
			}
		case 2:
			store.Remove(p.ID)
			delete(expected, p.ID)
		}

		wantTotal := decimal.Zero
		wantCount := 0
		for _, entry := range expected {
			wantTotal = wantTotal.Add(entry.price.Mul(decimal.NewFromInt(int64(entry.qty))))
			wantCount += entry.qty
		}
		if got := store.Total(); !got.Equal(wantTotal) {
			t.Fatalf("step %d: total %s, want %s", step, got, wantTotal)
		}
		if got := store.Count(); got != wantCount {
			t.Fatalf("step %d: count %d, want %d", step, got, wantCount)
		}
		if got := len(store.Snapshot().Lines); got != len(expected) {
			t.Fatalf("step %d: %d lines, want %d", step, got, len(expected))
		}
	}
}

func TestExactDecimalTotals(t *testing.T) {
	// 0.1 + 0.2 style sums must stay exact.
	store := NewStore()
	store.Add(testProduct(1, 0.1), 1)
	store.Add(testProduct(2, 0.2), 1)

	if got := store.Total(); got.String() != "0.3" {
		t.Fatalf("expected exact 0.3, got %s", got)
	}
}
