package products

// CreateProductRequest is the POST /api/products payload.
type CreateProductRequest struct {
	Name    string  `json:"name" validate:"required,max=200"`
	PriceHT float64 `json:"price_ht" validate:"gte=0"`
	VATRate float64 `json:"vat_rate" validate:"gte=0,lte=1"`
	Stock   int     `json:"stock" validate:"gte=0"`
}

// AdjustStockRequest is the PATCH /api/products/{id}/stock payload. Change is
// a pointer so a missing field is distinguishable from an explicit zero.
type AdjustStockRequest struct {
	Change *int `json:"change" validate:"required"`
}

// StockResponse reports the stock level after an adjustment.
type StockResponse struct {
	ProductID int64 `json:"product_id"`
	Stock     int   `json:"stock"`
}
