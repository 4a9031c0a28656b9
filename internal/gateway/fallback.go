package gateway

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tirona-thrift/internal/cart"
	"tirona-thrift/internal/logger"
	"tirona-thrift/internal/metrics"
	"tirona-thrift/internal/order"
	"tirona-thrift/internal/product"
)

const localOrderPrefix = "MOCK-"

// API is the remote storefront contract. Client implements it.
type API interface {
	GetProducts(ctx context.Context) ([]product.Product, error)
	GetOrders(ctx context.Context) ([]order.Order, error)
	CreateOrder(ctx context.Context, params order.CreateOrderParams) (order.Order, error)
	UpdateProduct(ctx context.Context, p product.Product) (product.Product, error)
	UpdateOrder(ctx context.Context, id string, status order.Status) error
}

// Fallback keeps the storefront usable while the backend is unreachable.
// Reads degrade to the bundled dataset and order creation is synthesized
// locally. Admin writes are never masked.
type Fallback struct {
	api     API
	metrics *metrics.Gateway
	now     func() time.Time
	newID   func() string
}

type FallbackOption func(*Fallback)

// WithClock overrides the time source used for synthesized orders.
func WithClock(now func() time.Time) FallbackOption {
	return func(f *Fallback) { f.now = now }
}

// WithIDGenerator overrides how synthesized order ids are produced.
func WithIDGenerator(newID func() string) FallbackOption {
	return func(f *Fallback) { f.newID = newID }
}

func NewFallback(api API, m *metrics.Gateway, opts ...FallbackOption) *Fallback {
	if m == nil {
		m = &metrics.Gateway{}
	}
	f := &Fallback{
		api:     api,
		metrics: m,
		now:     time.Now,
		newID:   LocalOrderID,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// GetProducts never fails. A null body counts as unavailable; an empty list
// is served as is. The returned error is always nil and exists so Fallback
// satisfies API.
func (f *Fallback) GetProducts(ctx context.Context) ([]product.Product, error) {
	products, err := f.api.GetProducts(ctx)
	if err == nil && products == nil {
		err = ErrNullCollection
	}
	if err != nil {
		f.degraded(ctx, "GetProducts", err)
		return product.Fallback(), nil
	}
	return products, nil
}

func (f *Fallback) GetOrders(ctx context.Context) ([]order.Order, error) {
	orders, err := f.api.GetOrders(ctx)
	if err == nil && orders == nil {
		err = ErrNullCollection
	}
	if err != nil {
		f.degraded(ctx, "GetOrders", err)
		return order.Fallback(), nil
	}
	return orders, nil
}

// CreateOrder falls back to a locally synthesized PENDING order so the
// shopper is never blocked by the backend.
func (f *Fallback) CreateOrder(ctx context.Context, params order.CreateOrderParams) (order.Order, error) {
	o, err := f.api.CreateOrder(ctx, params)
	if err == nil {
		return o, nil
	}

	o = SynthesizeOrder(params, f.newID(), f.now())
	f.metrics.SynthesizedOrders.Inc()
	logger.FromCtx(ctx).Warn("backend unavailable, order synthesized locally",
		zap.String("layer", "gateway"),
		zap.String("order_id", o.ID),
		zap.Error(err),
	)
	return o, nil
}

func (f *Fallback) UpdateProduct(ctx context.Context, p product.Product) (product.Product, error) {
	updated, err := f.api.UpdateProduct(ctx, p)
	if err != nil {
		f.adminWriteFailed(ctx, "UpdateProduct", p.ID, err)
		return product.Product{}, err
	}
	return updated, nil
}

func (f *Fallback) UpdateOrder(ctx context.Context, id string, status order.Status) error {
	if err := f.api.UpdateOrder(ctx, id, status); err != nil {
		f.adminWriteFailed(ctx, "UpdateOrder", id, err)
		return err
	}
	return nil
}

func (f *Fallback) degraded(ctx context.Context, op string, err error) {
	f.metrics.DegradedReads.Inc()
	logger.FromCtx(ctx).Warn("backend unavailable, serving bundled data",
		zap.String("layer", "gateway"),
		zap.String("op", op),
		zap.Error(err),
	)
}

func (f *Fallback) adminWriteFailed(ctx context.Context, op, id string, err error) {
	f.metrics.FailedAdminWrites.Inc()
	logger.FromCtx(ctx).Error("admin write failed",
		zap.String("layer", "gateway"),
		zap.String("op", op),
		zap.String("id", id),
		zap.Error(err),
	)
}

// SynthesizeOrder builds the order the backend would have returned.
func SynthesizeOrder(params order.CreateOrderParams, id string, now time.Time) order.Order {
	o := order.Order{
		ID:              id,
		CustomerName:    params.CustomerName,
		CustomerEmail:   params.CustomerEmail,
		CustomerPhone:   params.CustomerPhone,
		CustomerAddress: params.CustomerAddress,
		Items:           cart.CloneItems(params.Items),
		Total:           params.Total,
		Date:            now.UTC().Format(time.RFC3339),
		Status:          order.StatusPending,
	}
	return o
}

func LocalOrderID() string {
	return localOrderPrefix + uuid.NewString()
}

// IsLocalOrderID reports whether id was synthesized on this device and never reached the backend.
func IsLocalOrderID(id string) bool {
	return strings.HasPrefix(id, localOrderPrefix)
}
