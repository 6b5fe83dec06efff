package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Registry hands out one Store per shopper session, keyed by an opaque UUID
// token the storefront carries in a header. Carts live in process memory
// only; a restart or an unknown token simply yields a fresh cart.
type Registry struct {
	mu    sync.Mutex
	carts map[uuid.UUID]*Store
}

func NewRegistry() *Registry {
	return &Registry{
		carts: make(map[uuid.UUID]*Store),
	}
}

// Issue creates a fresh cart under a new token.
func (r *Registry) Issue() (uuid.UUID, *Store) {
	token := uuid.New()
	store := NewStore()

	r.mu.Lock()
	r.carts[token] = store
	r.mu.Unlock()

	return token, store
}

// Lookup returns the cart for the token, if the token is known.
func (r *Registry) Lookup(token uuid.UUID) (*Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	store, ok := r.carts[token]
	return store, ok
}

// Len reports how many carts are live, for readiness/debug logging.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.carts)
}
