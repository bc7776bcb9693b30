package products

import "time"

// Product is a sellable item. PriceHT is the pre-tax unit price; VATRate is a
// fraction (0.055 = 5.5%). Stock is a unit count and never goes negative.
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	PriceHT   float64   `json:"price_ht"`
	VATRate   float64   `json:"vat_rate"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
