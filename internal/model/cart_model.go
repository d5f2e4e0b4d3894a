package model

// CartLine pairs a product with a quantity. One line per product id;
// quantity is always >= 1 for a stored line.
type CartLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice Cents  `json:"unit_price_cents"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
	Category  string `json:"category"`
}

// LineTotal is unit price times quantity.
func (l CartLine) LineTotal() Cents {
	return l.UnitPrice * Cents(l.Quantity)
}

// Cart is an ordered sequence of lines; insertion order is display order.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Subtotal sums unit price times quantity over all lines. It is derived on
// every call and never cached.
func (c Cart) Subtotal() Cents {
	var total Cents
	for _, l := range c.Lines {
		total += l.LineTotal()
	}
	return total
}

// CartResponse is returned when reading the cart.
type CartResponse struct {
	Lines         []CartLine `json:"lines"`
	SubtotalCents Cents      `json:"subtotal_cents"`
	Subtotal      string     `json:"subtotal"`
}
