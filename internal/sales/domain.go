package sales

import (
	"fmt"
	"time"

	"github.com/farmstore/farmstore/internal/platform/httpx"
)

// Sale is a checkout header. CustomerID is nil for walk-in buyers. A sale is
// immutable once committed.
type Sale struct {
	ID         int64     `json:"id"`
	Code       string    `json:"code"`
	CustomerID *int64    `json:"customer_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// SaleItem is one sale line. PriceHTAtSale and VATRateAtSale snapshot the
// product's pricing at checkout time and never change with later price edits.
type SaleItem struct {
	ID            int64   `json:"id"`
	SaleID        int64   `json:"sale_id"`
	ProductID     int64   `json:"product_id"`
	Quantity      int     `json:"quantity"`
	PriceHTAtSale float64 `json:"price_ht_at_sale"`
	VATRateAtSale float64 `json:"vat_rate_at_sale"`
}

// ProductSnapshot is the locked product row read during checkout.
type ProductSnapshot struct {
	ID      int64
	Name    string
	PriceHT float64
	VATRate float64
	Stock   int
}

// HistoryEntry is one row of the recent-sales listing.
type HistoryEntry struct {
	SaleID       int64     `json:"sale_id"`
	Code         string    `json:"code"`
	CreatedAt    time.Time `json:"created_at"`
	CustomerName *string   `json:"customer_name,omitempty"`
	ItemCount    int       `json:"item_count"`
	TotalTTC     float64   `json:"total_ttc"`
}

// InsufficientStockError reports a line whose quantity exceeds available
// stock. It names the product and the shortfall and unwraps to
// httpx.ErrValidation so the whole request answers 400.
type InsufficientStockError struct {
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %d, available %d", e.ProductName, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return httpx.ErrValidation }
