package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farmstore/farmstore/internal/platform/db"
	"github.com/farmstore/farmstore/internal/platform/httpx"
)

// Repository persists sales in PostgreSQL.
type Repository interface {
	WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error
	History(ctx context.Context, limit int) ([]HistoryEntry, error)
}

// TxRepository exposes the operations of the sale-recording transaction. All
// of them run on the same connection so the FOR UPDATE locks hold until
// commit or rollback.
type TxRepository interface {
	InsertSale(ctx context.Context, code string, customerID *int64) (Sale, error)
	GetProductForUpdate(ctx context.Context, productID int64) (ProductSnapshot, error)
	InsertSaleItem(ctx context.Context, item SaleItem) (int64, error)
	SetProductStock(ctx context.Context, productID int64, stock int) error
}

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

// WithTx runs fn inside a read-committed transaction; the product row locks
// taken by GetProductForUpdate carry the consistency guarantee.
func (r *repository) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	return db.WithTx(ctx, r.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		return fn(ctx, &txRepository{tx: tx})
	})
}

func (r *repository) History(ctx context.Context, limit int) ([]HistoryEntry, error) {
	query := `
		SELECT s.id, s.code, s.created_at,
		       c.first_name, c.last_name,
		       COUNT(i.id),
		       COALESCE(SUM(i.price_ht_at_sale * (1 + i.vat_rate_at_sale) * i.quantity), 0)
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		LEFT JOIN sale_items i ON i.sale_id = s.id
		GROUP BY s.id, s.code, s.created_at, c.first_name, c.last_name
		ORDER BY s.created_at DESC, s.id DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var firstName, lastName *string
		if err := rows.Scan(&e.SaleID, &e.Code, &e.CreatedAt, &firstName, &lastName, &e.ItemCount, &e.TotalTTC); err != nil {
			return nil, err
		}
		if firstName != nil && lastName != nil {
			name := *firstName + " " + *lastName
			e.CustomerName = &name
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (t *txRepository) InsertSale(ctx context.Context, code string, customerID *int64) (Sale, error) {
	query := `INSERT INTO sales (code, customer_id) VALUES ($1, $2) RETURNING id, created_at`
	s := Sale{Code: code, CustomerID: customerID}
	if err := t.tx.QueryRow(ctx, query, code, customerID).Scan(&s.ID, &s.CreatedAt); err != nil {
		return Sale{}, err
	}
	return s, nil
}

func (t *txRepository) GetProductForUpdate(ctx context.Context, productID int64) (ProductSnapshot, error) {
	query := `SELECT id, name, price_ht, vat_rate, stock FROM products WHERE id = $1 FOR UPDATE`
	var p ProductSnapshot
	err := t.tx.QueryRow(ctx, query, productID).Scan(&p.ID, &p.Name, &p.PriceHT, &p.VATRate, &p.Stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return ProductSnapshot{}, fmt.Errorf("%w: product %d", httpx.ErrNotFound, productID)
	}
	return p, err
}

func (t *txRepository) InsertSaleItem(ctx context.Context, item SaleItem) (int64, error) {
	query := `
		INSERT INTO sale_items (sale_id, product_id, quantity, price_ht_at_sale, vat_rate_at_sale)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := t.tx.QueryRow(ctx, query, item.SaleID, item.ProductID, item.Quantity, item.PriceHTAtSale, item.VATRateAtSale).Scan(&id)
	return id, err
}

func (t *txRepository) SetProductStock(ctx context.Context, productID int64, stock int) error {
	tag, err := t.tx.Exec(ctx, `UPDATE products SET stock = $1, updated_at = NOW() WHERE id = $2`, stock, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %d", httpx.ErrNotFound, productID)
	}
	return nil
}
