package cache

import (
	"context"

	"tirona-thrift/internal/product"
)

// ProductCache holds the catalog list in front of the database. A cache is
// never authoritative: every failure reads as a miss.
type ProductCache interface {
	Products(ctx context.Context) ([]product.Product, bool)
	StoreProducts(ctx context.Context, products []product.Product)
	Invalidate(ctx context.Context)
}

// Nop is used when no Redis address is configured.
type Nop struct{}

func (Nop) Products(context.Context) ([]product.Product, bool) { return nil, false }
func (Nop) StoreProducts(context.Context, []product.Product) {}
func (Nop) Invalidate(context.Context) {}
