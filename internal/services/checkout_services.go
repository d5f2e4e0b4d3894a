package services

import (
	"context"
	"errors"

	"StorefrontAPI/external/shopapi"
	"StorefrontAPI/internal/model"
)

// ErrEmptyCart short-circuits checkout before any request is issued.
var ErrEmptyCart = errors.New("cart is empty")

type PaymentInitiator interface {
	ProcessPayment(ctx context.Context, token string, items []shopapi.PaymentItem, total float64) (string, error)
}

// CheckoutService hands the cart off to the payment provider via the
// backend. It never clears the cart: the cart must survive the round trip to
// the hosted payment page, since nothing is confirmed yet.
type CheckoutService struct {
	API   PaymentInitiator
	Carts *CartService
}

func NewCheckoutService(api PaymentInitiator, carts *CartService) *CheckoutService {
	return &CheckoutService{API: api, Carts: carts}
}

// InitiatePayment opens a payment session for the cart contents and returns
// the hosted checkout URL. On failure the cart and session are untouched and
// the user may retry.
func (s *CheckoutService) InitiatePayment(ctx context.Context, sess *model.Session) (string, error) {
	cart := s.Carts.Get(sess.ID)
	if len(cart.Lines) == 0 {
		return "", ErrEmptyCart
	}

	items := make([]shopapi.PaymentItem, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		items = append(items, shopapi.PaymentItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.UnitPrice.Float64(),
			Quantity:  l.Quantity,
		})
	}

	return s.API.ProcessPayment(ctx, sess.Token, items, cart.Subtotal().Float64())
}
