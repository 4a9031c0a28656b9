package order

import "sync"

// Store keeps the admin's view of orders, newest first.
type Store struct {
	mu     sync.RWMutex
	orders []Order
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Load(orders []Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = CloneAll(orders)
}

func (s *Store) List() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CloneAll(s.orders)
}

func (s *Store) Get(id string) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o.Clone(), true
		}
	}
	return Order{}, false
}

// Prepend puts a freshly placed order at the head of the list.
func (s *Store) Prepend(o Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]Order{o.Clone()}, s.orders...)
}

func (s *Store) UpdateStatus(id string, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return nil
		}
	}
	return ErrOrderNotFound
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// Stats are the sales figures on the admin dashboard.
type Stats struct {
	Revenue   int64
	ItemsSold int
	Orders    int
}

// Stats sums order totals and counts line items across all orders.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Stats{Orders: len(s.orders)}
	for _, o := range s.orders {
		st.Revenue += o.Total
		st.ItemsSold += len(o.Items)
	}
	return st
}
