package catalog

import (
	"context"
	"sync"
	"time"

	"go.uber.org/multierr"

	pkgerrors "github.com/shopverse/storefront-backend/pkg/errors"
)

// Source supplies the raw product list. Satisfied by *SourceClient.
type Source interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

// Service holds the in-memory catalog snapshot and answers queries against
// it. Queries themselves are pure; the only mutable state is the snapshot
// swapped by Refresh, guarded by one RWMutex since the HTTP host serves from
// many goroutines.
type Service struct {
	source Source

	mu       sync.RWMutex
	products []Product
	loadedAt time.Time
}

// NewService builds a catalog service backed by the provided source.
func NewService(source Source) (*Service, error) {
	if source == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog source is required")
	}
	return &Service{source: source}, nil
}

// RefreshReport summarizes one snapshot load.
type RefreshReport struct {
	Loaded  int
	Dropped int
	// Invalid aggregates the per-record validation failures behind Dropped.
	Invalid error
}

// Refresh fetches the upstream product list and swaps the snapshot. Records
// that fail validation are dropped rather than failing the whole load; the
// report carries the combined reasons so the caller can log them.
func (s *Service) Refresh(ctx context.Context) (RefreshReport, error) {
	fetched, err := s.source.FetchProducts(ctx)
	if err != nil {
		return RefreshReport{}, err
	}

	kept := make([]Product, 0, len(fetched))
	var invalid error
	for _, p := range fetched {
		if err := p.Validate(); err != nil {
			invalid = multierr.Append(invalid, err)
			continue
		}
		kept = append(kept, p)
	}

	s.mu.Lock()
	s.products = kept
	s.loadedAt = time.Now()
	s.mu.Unlock()

	return RefreshReport{
		Loaded:  len(kept),
		Dropped: len(fetched) - len(kept),
		Invalid: invalid,
	}, nil
}

// Ready reports whether a snapshot has been loaded at least once.
func (s *Service) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.loadedAt.IsZero()
}

// Query runs the filter/sort/paginate pipeline over the current snapshot.
func (s *Service) Query(criteria Criteria, page, pageSize int) (Result, error) {
	s.mu.RLock()
	products := s.products
	s.mu.RUnlock()
	return Query(products, criteria, page, pageSize)
}

// Facets lists the distinct categories and brands in the current snapshot.
func (s *Service) Facets() Facets {
	s.mu.RLock()
	products := s.products
	s.mu.RUnlock()
	return CollectFacets(products)
}

// GetProduct looks up one product by id, for quick view and for cart price
// snapshots.
func (s *Service) GetProduct(id int64) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}
