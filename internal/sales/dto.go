package sales

import "time"

// SaleLineRequest is one (product, quantity) pair of a checkout.
type SaleLineRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// CreateSaleRequest is the POST /api/sales payload.
type CreateSaleRequest struct {
	CustomerID *int64            `json:"customer_id,omitempty" validate:"omitempty,gt=0"`
	Items      []SaleLineRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleLineResponse echoes a committed line with its tax-inclusive total.
type SaleLineResponse struct {
	ProductID     int64   `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Quantity      int     `json:"quantity"`
	PriceHTAtSale float64 `json:"price_ht_at_sale"`
	VATRateAtSale float64 `json:"vat_rate_at_sale"`
	LineTotalTTC  float64 `json:"line_total_ttc"`
}

// SaleResponse is the POST /api/sales success body.
type SaleResponse struct {
	ID         int64              `json:"id"`
	Code       string             `json:"code"`
	CustomerID *int64             `json:"customer_id,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	Items      []SaleLineResponse `json:"items"`
	TotalTTC   float64            `json:"total_ttc"`
}
