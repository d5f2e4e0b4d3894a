package shopapi

import (
	"context"
	"net/http"
)

// PaymentItem is one cart line in the payment-initiation request, using the
// field names the backend forwards to the payment provider.
type PaymentItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// ProcessPayment opens a payment session for the cart contents and returns
// the hosted checkout page URL the client must navigate to.
func (c *Client) ProcessPayment(ctx context.Context, token string, items []PaymentItem, total float64) (string, error) {
	var out struct {
		InitPoint string `json:"init_point"`
	}
	err := c.do(ctx, token, http.MethodPost, "/payment/process", map[string]any{
		"items": items,
		"total": total,
	}, &out)
	if err != nil {
		return "", err
	}
	if out.InitPoint == "" {
		return "", &APIError{Status: http.StatusBadGateway, Message: "payment session has no checkout URL"}
	}
	return out.InitPoint, nil
}
