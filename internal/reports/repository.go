package reports

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads sale aggregates from PostgreSQL. Read-only; no write side
// effects.
type Repository interface {
	SalesBetween(ctx context.Context, from, toExclusive time.Time) ([]ReportLine, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository backed by pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// SalesBetween reads the range in a single statement, so lines come from one
// snapshot; the caller derives the revenue total from them.
func (r *repository) SalesBetween(ctx context.Context, from, toExclusive time.Time) ([]ReportLine, error) {
	query := `
		SELECT s.code, s.created_at, p.name, c.first_name, c.last_name,
		       i.quantity, i.price_ht_at_sale, i.vat_rate_at_sale,
		       i.price_ht_at_sale * (1 + i.vat_rate_at_sale) * i.quantity
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		JOIN products p ON p.id = i.product_id
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE s.created_at >= $1 AND s.created_at < $2
		ORDER BY s.created_at, s.id, i.id
	`
	rows, err := r.pool.Query(ctx, query, from, toExclusive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []ReportLine
	for rows.Next() {
		var l ReportLine
		var firstName, lastName *string
		if err := rows.Scan(&l.SaleCode, &l.SoldAt, &l.ProductName, &firstName, &lastName,
			&l.Quantity, &l.PriceHTAtSale, &l.VATRateAtSale, &l.LineTotalTTC); err != nil {
			return nil, err
		}
		if firstName != nil && lastName != nil {
			name := *firstName + " " + *lastName
			l.CustomerName = &name
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
