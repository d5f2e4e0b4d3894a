package model

import "time"

// OrderStatus values mirror the backend's order lifecycle.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderApproved  OrderStatus = "approved"
	OrderRejected  OrderStatus = "rejected"
	OrderShipping  OrderStatus = "shipping"
	OrderDelivered OrderStatus = "delivered"
)

// Terminal reports whether payment confirmation can stop polling this order.
func (s OrderStatus) Terminal() bool {
	return s == OrderApproved || s == OrderRejected
}

// OrderItem is one purchased line as reported by the backend.
type OrderItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice Cents  `json:"unit_price_cents"`
}

// Order is owned by the backend; this side only reads and displays it.
type Order struct {
	ID        string      `json:"id"`
	Items     []OrderItem `json:"items"`
	Total     Cents       `json:"total_cents"`
	Status    OrderStatus `json:"status"`
	PaymentID string      `json:"payment_id,omitempty"`
	CreatedAt *time.Time  `json:"created_at,omitempty"`
}
