package reports

import "time"

// ReportLine is one sold line inside the requested date range. Amounts come
// from the sale-time snapshot, independent of current product pricing.
type ReportLine struct {
	SaleCode      string    `json:"sale_code"`
	SoldAt        time.Time `json:"sold_at"`
	ProductName   string    `json:"product_name"`
	CustomerName  *string   `json:"customer_name,omitempty"`
	Quantity      int       `json:"quantity"`
	PriceHTAtSale float64   `json:"price_ht_at_sale"`
	VATRateAtSale float64   `json:"vat_rate_at_sale"`
	LineTotalTTC  float64   `json:"line_total_ttc"`
}

// SalesReport aggregates a date range: line detail plus summed TTC revenue.
type SalesReport struct {
	Start    string       `json:"start"`
	End      string       `json:"end"`
	Lines    []ReportLine `json:"lines"`
	TotalTTC float64      `json:"total_ttc"`
}
