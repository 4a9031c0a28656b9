package product

import "sync"

// Store is the in-memory catalog the storefront renders from.
// It is filled once at startup and afterwards only changed through admin edits.
type Store struct {
	mu       sync.RWMutex
	products []Product
}

func NewStore() *Store {
	return &Store{}
}

// Load replaces the whole catalog.
func (s *Store) Load(products []Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = CloneAll(products)
}

// List returns a copy of the catalog in display order.
func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CloneAll(s.products)
}

func (s *Store) Get(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return Product{}, false
}

// Replace swaps the product with the same id, keeping its position.
func (s *Store) Replace(p Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p.Clone()
			return nil
		}
	}
	return ErrProductNotFound
}

// FindByIDs returns the products matching ids, in the order of ids. Unknown ids are skipped.
func (s *Store) FindByIDs(ids []string) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, 0, len(ids))
	for _, id := range ids {
		for _, p := range s.products {
			if p.ID == id {
				out = append(out, p.Clone())
				break
			}
		}
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
