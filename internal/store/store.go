// Package store holds the view-local product collection and the form
// draft. It is mutated only by the console's CRUD operations; the
// server copy is always authoritative and replaces it wholesale.
package store

import (
	"sort"
	"sync"

	"github.com/interiorpro/adminconsole/internal/domain"
)

type Store struct {
	mu       sync.RWMutex
	products []domain.Product
}

func New() *Store {
	return &Store{}
}

// Replace swaps in a fresh authoritative product list, sorted by
// creation timestamp descending. A missing timestamp sorts as epoch
// zero, i.e. oldest, regardless of how the entry is labelled in the
// dashboard.
func (s *Store) Replace(products []domain.Product) {
	sorted := make([]domain.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].CreatedAt.Time.Before(sorted[i].CreatedAt.Time)
	})
	s.mu.Lock()
	s.products = sorted
	s.mu.Unlock()
}

// Products returns a copy of the current list in display order.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Get looks a product up by id.
func (s *Store) Get(id domain.ID) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Remove drops a product by id and reports whether it was present.
// Used for the optimistic delete; a failed delete is reconciled by a
// full Replace, never by re-insertion.
func (s *Store) Remove(id domain.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}
