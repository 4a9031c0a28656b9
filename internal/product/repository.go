package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"tirona-thrift/internal/logger"
)

var productColumns = []string{"id", "name", "price", "category", "images", "description", "tags", "size"}

// Repository is the Postgres-backed catalog used by the API server.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, p Product) (Product, error)
	Seed(ctx context.Context, products []Product) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	query, args, err := psql().
		Select(productColumns...).
		From("products").
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build product list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// Update overwrites every mutable column of the product row and returns the stored record.
func (r *repository) Update(ctx context.Context, p Product) (Product, error) {
	query, args, err := psql().
		Update("products").
		SetMap(map[string]interface{}{
			"name":        p.Name,
			"price":       p.Price,
			"category":    p.Category,
			"images":      pq.Array(p.Images),
			"description": p.Description,
			"tags":        pq.Array(p.Tags),
			"size":        p.Size,
			"updated_at":  sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING id, name, price, category, images, description, tags, size").
		ToSql()
	if err != nil {
		return Product{}, fmt.Errorf("build product update query: %w", err)
	}

	updated, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrProductNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update product",
			zap.String("product_id", p.ID),
			zap.Error(err),
		)
		return Product{}, err
	}

	return updated, nil
}

// Seed inserts products that do not exist yet. Existing rows are left alone.
func (r *repository) Seed(ctx context.Context, products []Product) error {
	if len(products) == 0 {
		return nil
	}

	builder := psql().Insert("products").Columns(productColumns...)
	for _, p := range products {
		builder = builder.Values(p.ID, p.Name, p.Price, p.Category, pq.Array(p.Images), p.Description, pq.Array(p.Tags), p.Size)
	}

	query, args, err := builder.Suffix("ON CONFLICT (id) DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("build product seed query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.Category,
		pq.Array(&p.Images),
		&p.Description,
		pq.Array(&p.Tags),
		&p.Size,
	)
	return p, err
}
