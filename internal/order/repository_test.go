package order

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tirona-thrift/internal/cart"
	"tirona-thrift/internal/product"
)

var orderColumns = []string{
	"id", "customer_name", "customer_email", "customer_phone",
	"customer_address", "items", "total", "status", "created_at",
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		created := time.Date(2024, 5, 22, 9, 30, 0, 0, time.UTC)
		rows := sqlmock.NewRows(orderColumns).AddRow(
			"ORD-002", "Elena K.", "elena@example.com", "0697654321", "Tirana",
			[]byte(`[{"id":"4","name":"VAMP MESH TOP","price":3200,"quantity":2}]`),
			6400, "PENDING", created,
		)
		mock.ExpectQuery(`(?s)SELECT .* FROM orders ORDER BY created_at DESC`).WillReturnRows(rows)

		res, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "ORD-002", res[0].ID)
		assert.Equal(t, StatusPending, res[0].Status)
		assert.Equal(t, "2024-05-22T09:30:00Z", res[0].Date)
		require.Len(t, res[0].Items, 1)
		assert.Equal(t, 2, res[0].Items[0].Quantity)
		assert.Equal(t, int64(3200), res[0].Items[0].Price)
	})

	t.Run("BadItems", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		rows := sqlmock.NewRows(orderColumns).AddRow(
			"ORD-1", "n", "e", "p", "a", []byte(`not json`), 1, "PENDING", time.Now(),
		)
		mock.ExpectQuery(`SELECT`).WillReturnRows(rows)

		_, err = repo.List(ctx)
		assert.ErrorContains(t, err, "decode items of order ORD-1")
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("db error"))
		_, err = repo.List(ctx)
		assert.Error(t, err)
	})
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	params := CreateOrderParams{
		CustomerName:    "Ardit H.",
		CustomerAddress: "Blloku, Tirana",
		CustomerEmail:   "ardit@example.com",
		CustomerPhone:   "0691234567",
		Items:           []cart.Item{{Product: product.Product{ID: "1", Price: 8500}, Quantity: 1}},
		Total:           8500,
	}

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
			WithArgs(sqlmock.AnyArg(), "Ardit H.", "ardit@example.com", "0691234567",
				"Blloku, Tirana", sqlmock.AnyArg(), int64(8500), "PENDING", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		o, err := repo.Create(ctx, params)
		require.NoError(t, err)
		assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, o.ID)
		assert.Equal(t, StatusPending, o.Status)
		assert.NotEmpty(t, o.Date)
		assert.Equal(t, params.Items, o.Items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ExecError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec("INSERT INTO orders").WillReturnError(errors.New("db error"))
		_, err = repo.Create(ctx, params)
		assert.Error(t, err)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`UPDATE orders SET status = \$1 WHERE id = \$2`).
			WithArgs("SHIPPED", "ORD-001").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateStatus(ctx, "ORD-001", StatusShipped))
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`UPDATE orders`).WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, repo.UpdateStatus(ctx, "ORD-404", StatusShipped), ErrOrderNotFound)
	})
}
