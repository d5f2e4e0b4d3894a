package shopapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"StorefrontAPI/internal/model"
)

type orderItemPayload struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type orderPayload struct {
	ID        string             `json:"id"`
	MongoID   string             `json:"_id"`
	Items     []orderItemPayload `json:"items"`
	Total     float64            `json:"total"`
	Status    string             `json:"status"`
	PaymentID string             `json:"paymentId"`
	CreatedAt *time.Time         `json:"createdAt"`
}

func (o orderPayload) normalize() model.Order {
	order := model.Order{
		ID:        o.ID,
		Total:     model.CentsFromFloat(o.Total),
		Status:    normalizeStatus(o.Status),
		PaymentID: o.PaymentID,
		CreatedAt: o.CreatedAt,
	}
	if order.ID == "" {
		order.ID = o.MongoID
	}
	order.Items = make([]model.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		item := model.OrderItem{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: model.CentsFromFloat(it.Price),
		}
		if item.Name == "" {
			item.Name = "Untitled product"
		}
		order.Items = append(order.Items, item)
	}
	return order
}

// normalizeStatus maps whatever the backend sent onto the known lifecycle;
// anything unrecognized displays as pending rather than erroring out.
func normalizeStatus(raw string) model.OrderStatus {
	switch s := model.OrderStatus(strings.ToLower(strings.TrimSpace(raw))); s {
	case model.OrderPending, model.OrderApproved, model.OrderRejected,
		model.OrderShipping, model.OrderDelivered:
		return s
	default:
		return model.OrderPending
	}
}

// MyOrders lists the signed-in user's order history.
func (c *Client) MyOrders(ctx context.Context, token string) ([]model.Order, error) {
	var payload []orderPayload
	if err := c.do(ctx, token, http.MethodGet, "/orders/my", nil, &payload); err != nil {
		return nil, err
	}
	orders := make([]model.Order, 0, len(payload))
	for _, o := range payload {
		orders = append(orders, o.normalize())
	}
	return orders, nil
}

func (c *Client) Order(ctx context.Context, token, id string) (model.Order, error) {
	var payload orderPayload
	if err := c.do(ctx, token, http.MethodGet, "/orders/"+id, nil, &payload); err != nil {
		return model.Order{}, err
	}
	return payload.normalize(), nil
}
