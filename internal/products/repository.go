package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farmstore/farmstore/internal/platform/db"
	"github.com/farmstore/farmstore/internal/platform/httpx"
)

// Repository persists products in PostgreSQL.
type Repository interface {
	WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, p Product) (Product, error)
}

// TxRepository exposes the row-locked operations used inside a transaction.
type TxRepository interface {
	GetForUpdate(ctx context.Context, id int64) (Product, error)
	SetStock(ctx context.Context, id int64, stock int) error
}

// uniqueViolation is the SQLSTATE raised by the products name unique index.
const uniqueViolation = "23505"

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository backed by pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

type txRepository struct {
	tx pgx.Tx
}

// WithTx runs fn inside a read-committed transaction; stock consistency comes
// from the FOR UPDATE row lock, not the isolation level.
func (r *repository) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	return db.WithTx(ctx, r.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		return fn(ctx, &txRepository{tx: tx})
	})
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	query := `SELECT id, name, price_ht, vat_rate, stock, created_at, updated_at FROM products ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.PriceHT, &p.VATRate, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Product, error) {
	query := `SELECT id, name, price_ht, vat_rate, stock, created_at, updated_at FROM products WHERE id = $1`
	var p Product
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.PriceHT, &p.VATRate, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, fmt.Errorf("%w: product %d", httpx.ErrNotFound, id)
	}
	return p, err
}

func (r *repository) Create(ctx context.Context, p Product) (Product, error) {
	query := `
		INSERT INTO products (name, price_ht, vat_rate, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query, p.Name, p.PriceHT, p.VATRate, p.Stock).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return Product{}, fmt.Errorf("%w: product name %q", httpx.ErrDuplicate, p.Name)
		}
		return Product{}, err
	}
	return p, nil
}

func (t *txRepository) GetForUpdate(ctx context.Context, id int64) (Product, error) {
	query := `SELECT id, name, price_ht, vat_rate, stock, created_at, updated_at FROM products WHERE id = $1 FOR UPDATE`
	var p Product
	err := t.tx.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.PriceHT, &p.VATRate, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, fmt.Errorf("%w: product %d", httpx.ErrNotFound, id)
	}
	return p, err
}

func (t *txRepository) SetStock(ctx context.Context, id int64, stock int) error {
	tag, err := t.tx.Exec(ctx, `UPDATE products SET stock = $1, updated_at = NOW() WHERE id = $2`, stock, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %d", httpx.ErrNotFound, id)
	}
	return nil
}
