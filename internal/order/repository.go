package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tirona-thrift/internal/logger"
)

// Repository is the Postgres order book behind the API server.
type Repository interface {
	List(ctx context.Context) ([]Order, error)
	Create(ctx context.Context, params CreateOrderParams) (Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func newOrderID() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func (r *repository) List(ctx context.Context) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id,
			customer_name,
			customer_email,
			customer_phone,
			customer_address,
			items,
			total,
			status,
			created_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		var (
			o         Order
			rawItems  []byte
			createdAt time.Time
		)
		if err := rows.Scan(
			&o.ID,
			&o.CustomerName,
			&o.CustomerEmail,
			&o.CustomerPhone,
			&o.CustomerAddress,
			&rawItems,
			&o.Total,
			&o.Status,
			&createdAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(rawItems, &o.Items); err != nil {
			return nil, fmt.Errorf("decode items of order %s: %w", o.ID, err)
		}
		o.Date = createdAt.UTC().Format(time.RFC3339)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// Create stores a validated order as PENDING with a server-assigned id and date.
func (r *repository) Create(ctx context.Context, params CreateOrderParams) (Order, error) {
	items, err := json.Marshal(params.Items)
	if err != nil {
		return Order{}, fmt.Errorf("encode order items: %w", err)
	}

	now := time.Now().UTC()
	o := Order{
		ID:              newOrderID(),
		CustomerName:    params.CustomerName,
		CustomerEmail:   params.CustomerEmail,
		CustomerPhone:   params.CustomerPhone,
		CustomerAddress: params.CustomerAddress,
		Items:           params.Items,
		Total:           params.Total,
		Date:            now.Format(time.RFC3339),
		Status:          StatusPending,
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO orders (
			id, customer_name, customer_email, customer_phone,
			customer_address, items, total, status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		o.ID,
		o.CustomerName,
		o.CustomerEmail,
		o.CustomerPhone,
		o.CustomerAddress,
		items,
		o.Total,
		o.Status,
		now,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert order",
			zap.String("order_id", o.ID),
			zap.Error(err),
		)
		return Order{}, err
	}

	return o, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status Status) error {
	res, err := r.db.ExecContext(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
