package order

import (
	"tirona-thrift/internal/cart"
	"tirona-thrift/internal/product"
)

// Fallback returns the bundled order history shown when the backend is offline.
func Fallback() []Order {
	catalog := product.Fallback()
	return []Order{
		{
			ID:              "ORD-001",
			CustomerName:    "Ardit H.",
			CustomerEmail:   "ardit@example.com",
			CustomerAddress: "Blloku, Tirana",
			CustomerPhone:   "0691234567",
			Items:           []cart.Item{{Product: catalog[0], Quantity: 1}},
			Total:           8500,
			Date:            "2024-05-20",
			Status:          StatusDelivered,
		},
		{
			ID:              "ORD-002",
			CustomerName:    "Elena K.",
			CustomerEmail:   "elena@example.com",
			CustomerAddress: "Komuna e Parisit, Tirana",
			CustomerPhone:   "0697654321",
			Items:           []cart.Item{{Product: catalog[3], Quantity: 2}},
			Total:           6400,
			Date:            "2024-05-22",
			Status:          StatusPending,
		},
	}
}
