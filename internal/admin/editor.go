package admin

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"tirona-thrift/internal/logger"
	"tirona-thrift/internal/order"
	"tirona-thrift/internal/product"
)

// Gateway is the authenticated write side of the backend.
type Gateway interface {
	UpdateProduct(ctx context.Context, p product.Product) (product.Product, error)
	UpdateOrder(ctx context.Context, id string, status order.Status) error
}

// Editor drives the admin panel: at most one product draft at a time plus
// order fulfilment status.
type Editor struct {
	mu      sync.Mutex
	gateway Gateway
	catalog *product.Store
	orders  *order.Store
	draft   *Draft
}

func NewEditor(gateway Gateway, catalog *product.Store, orders *order.Store) *Editor {
	return &Editor{gateway: gateway, catalog: catalog, orders: orders}
}

// BeginEdit starts a fresh draft for p, discarding any draft in progress.
func (e *Editor) BeginEdit(p product.Product) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = newDraft(p)
}

// Draft returns the product as currently edited.
func (e *Editor) Draft() (product.Product, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.draft == nil {
		return product.Product{}, false
	}
	return e.draft.values.Clone(), true
}

func (e *Editor) Editing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft != nil
}

// SetField overlays value onto the draft. Only the value's shape is checked;
// business rules wait for Save.
func (e *Editor) SetField(field string, value any) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.draft == nil {
		return ErrNoDraft
	}
	return e.draft.set(field, value)
}

// AddImage appends an image reference to the draft.
func (e *Editor) AddImage(ref string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.draft == nil {
		return ErrNoDraft
	}
	images := append(append([]string(nil), e.draft.values.Images...), ref)
	return e.draft.set(FieldImages, images)
}

func (e *Editor) RemoveImage(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.draft == nil {
		return ErrNoDraft
	}

	current := e.draft.values.Images
	if index < 0 || index >= len(current) {
		return fmt.Errorf("%w: %d of %d", ErrImageIndex, index, len(current))
	}

	images := make([]string, 0, len(current)-1)
	images = append(images, current[:index]...)
	images = append(images, current[index+1:]...)
	return e.draft.set(FieldImages, images)
}

// Save pushes the draft to the backend. The catalog only changes, and the
// draft is only cleared, once the backend accepts the update.
func (e *Editor) Save(ctx context.Context) (product.Product, error) {
	e.mu.Lock()
	draft := e.draft
	e.mu.Unlock()
	if draft == nil {
		return product.Product{}, ErrNoDraft
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "admin"),
		zap.String("product_id", draft.ID()),
	)

	canonical, ok := e.catalog.Get(draft.ID())
	if !ok {
		return product.Product{}, fmt.Errorf("%w: %s", product.ErrProductNotFound, draft.ID())
	}

	e.mu.Lock()
	merged := draft.over(canonical)
	e.mu.Unlock()

	if err := merged.Validate(); err != nil {
		log.Warn("draft rejected", zap.Error(err))
		return product.Product{}, err
	}

	if _, err := e.gateway.UpdateProduct(ctx, merged); err != nil {
		log.Error("failed to save product", zap.Error(err))
		return product.Product{}, fmt.Errorf("save product %s: %w", merged.ID, err)
	}

	if err := e.catalog.Replace(merged); err != nil {
		return product.Product{}, err
	}

	e.mu.Lock()
	if e.draft == draft {
		e.draft = nil
	}
	e.mu.Unlock()

	log.Info("product saved")
	return merged.Clone(), nil
}

// Cancel drops the draft without touching the backend.
func (e *Editor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = nil
}

// SetOrderStatus moves an order through fulfilment. The local store follows
// the backend, never leads it.
func (e *Editor) SetOrderStatus(ctx context.Context, id string, status order.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", order.ErrInvalidStatus, status)
	}
	if _, ok := e.orders.Get(id); !ok {
		return fmt.Errorf("%w: %s", order.ErrOrderNotFound, id)
	}

	if err := e.gateway.UpdateOrder(ctx, id, status); err != nil {
		logger.FromCtx(ctx).Error("failed to update order status",
			zap.String("layer", "admin"),
			zap.String("order_id", id),
			zap.Error(err),
		)
		return fmt.Errorf("update order %s: %w", id, err)
	}

	return e.orders.UpdateStatus(id, status)
}
