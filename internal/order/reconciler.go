package order

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tirona-thrift/internal/cart"
	"tirona-thrift/internal/logger"
	"tirona-thrift/internal/product"
)

// Creator places an order with the backend.
type Creator interface {
	CreateOrder(ctx context.Context, params CreateOrderParams) (Order, error)
}

// Reconciler turns a checkout form into a placed order and folds it into the Store.
type Reconciler struct {
	gateway Creator
	store   *Store
}

func NewReconciler(gateway Creator, store *Store) *Reconciler {
	return &Reconciler{gateway: gateway, store: store}
}

// Submit buys a single product directly from its detail view. Quantity is always 1
// and the cart is not consulted.
func (r *Reconciler) Submit(ctx context.Context, p product.Product, details CustomerDetails) (Order, error) {
	items := []cart.Item{{Product: p.Clone(), Quantity: 1}}
	return r.place(ctx, items, details)
}

// SubmitCart checks out every line in the cart and empties it once the order is placed.
func (r *Reconciler) SubmitCart(ctx context.Context, c *cart.Cart, details CustomerDetails) (Order, error) {
	items := c.Items()
	if len(items) == 0 {
		return Order{}, cart.ErrCartEmpty
	}

	o, err := r.place(ctx, items, details)
	if err != nil {
		return Order{}, err
	}

	c.Clear()
	return o, nil
}

func (r *Reconciler) place(ctx context.Context, items []cart.Item, details CustomerDetails) (Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "reconciler"),
		zap.Int("item_count", len(items)),
	)

	if err := details.Validate(); err != nil {
		log.Warn("checkout form rejected", zap.Error(err))
		return Order{}, err
	}

	params := CreateOrderParams{
		CustomerName:    details.Name,
		CustomerAddress: details.Address,
		CustomerEmail:   details.Email,
		CustomerPhone:   details.Phone,
		Items:           items,
		Total:           cart.Total(items),
	}

	o, err := r.gateway.CreateOrder(ctx, params)
	if err != nil {
		log.Error("failed to place order", zap.Error(err))
		return Order{}, fmt.Errorf("%w: %w", ErrCreateOrder, err)
	}

	r.store.Prepend(o)

	log.Info("order placed",
		zap.String("order_id", o.ID),
		zap.Int64("total", o.Total),
	)
	return o.Clone(), nil
}

// Confirmation is the acknowledgement shown to the shopper after checkout.
func Confirmation(o Order) string {
	return fmt.Sprintf("ORDER CONFIRMED FOR %s. CHECK EMAIL.", strings.ToUpper(o.CustomerName))
}
