package model

// Product is a normalized catalog entry. Every field is populated: missing
// or malformed backend fields are replaced with safe display defaults at the
// ingestion boundary, never inside views.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Cents  `json:"price_cents"`
	Category    string `json:"category"`
	Stock       int    `json:"stock"`
	Image       string `json:"image"`
}
