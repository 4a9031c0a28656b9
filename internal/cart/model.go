package cart

import "tirona-thrift/internal/product"

// Item is a product line in the cart. On the wire the product fields are flattened next to quantity.
type Item struct {
	product.Product
	Quantity int `json:"quantity"`
}

func (i Item) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

func (i Item) Clone() Item {
	return Item{Product: i.Product.Clone(), Quantity: i.Quantity}
}

// CloneItems deep copies a line-item list. Orders use it to snapshot what was bought.
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, it.Clone())
	}
	return out
}

// Total sums price times quantity over items.
func Total(items []Item) int64 {
	var total int64
	for _, it := range items {
		total += it.Subtotal()
	}
	return total
}
