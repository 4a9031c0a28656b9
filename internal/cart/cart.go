package cart

import (
	"sync"

	"tirona-thrift/internal/product"
)

// Cart aggregates add-to-cart actions into one line per product id.
// Totals are computed on every call; nothing is cached.
type Cart struct {
	mu    sync.RWMutex
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add increments the quantity of an existing line or appends a new one with quantity 1.
func (c *Cart) Add(p product.Product) Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(p.ID); i >= 0 {
		c.items[i].Quantity++
		return c.items[i].Clone()
	}

	item := Item{Product: p.Clone(), Quantity: 1}
	c.items = append(c.items, item)
	return item.Clone()
}

// Decrement lowers the quantity of a line by one and drops the line when it reaches zero.
func (c *Cart) Decrement(productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(productID)
	if i < 0 {
		return ErrCartItemNotFound
	}
	if c.items[i].Quantity > 1 {
		c.items[i].Quantity--
		return nil
	}
	c.removeAt(i)
	return nil
}

// Remove drops a line regardless of its quantity.
func (c *Cart) Remove(productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(productID)
	if i < 0 {
		return ErrCartItemNotFound
	}
	c.removeAt(i)
	return nil
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a snapshot of the lines in insertion order.
func (c *Cart) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, it.Clone())
	}
	return out
}

func (c *Cart) IsEmpty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items) == 0
}

func (c *Cart) TotalQuantity() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) TotalPrice() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Total(c.items)
}

func (c *Cart) indexOf(productID string) int {
	for i := range c.items {
		if c.items[i].ID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.items = append(c.items[:i], c.items[i+1:]...)
}
