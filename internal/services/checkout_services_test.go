package services

import (
	"context"
	"testing"

	"StorefrontAPI/external/shopapi"
	"StorefrontAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPaymentAPI struct {
	calls     int
	gotToken  string
	gotItems  []shopapi.PaymentItem
	gotTotal  float64
	initPoint string
	err       error
}

func (m *mockPaymentAPI) ProcessPayment(_ context.Context, token string, items []shopapi.PaymentItem, total float64) (string, error) {
	m.calls++
	m.gotToken = token
	m.gotItems = items
	m.gotTotal = total
	if m.err != nil {
		return "", m.err
	}
	return m.initPoint, nil
}

func checkoutSession() *model.Session {
	return &model.Session{ID: "s1", Token: "jwt-token"}
}

func TestInitiatePayment_EmptyCartShortCircuits(t *testing.T) {
	api := &mockPaymentAPI{initPoint: "https://pay.example/x"}
	svc := NewCheckoutService(api, NewCartService())

	_, err := svc.InitiatePayment(context.Background(), checkoutSession())
	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, api.calls, "empty cart must not issue a request")
}

func TestInitiatePayment_SendsLinesAndTotal(t *testing.T) {
	api := &mockPaymentAPI{initPoint: "https://pay.example/x"}
	carts := NewCartService()
	svc := NewCheckoutService(api, carts)

	for i := 0; i < 3; i++ {
		carts.AddItem("s1", coffee())
	}
	carts.AddItem("s1", mug())

	initPoint, err := svc.InitiatePayment(context.Background(), checkoutSession())
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/x", initPoint)
	assert.Equal(t, "jwt-token", api.gotToken)
	assert.Equal(t, 64.70, api.gotTotal)

	require.Len(t, api.gotItems, 2)
	assert.Equal(t, shopapi.PaymentItem{ProductID: "p1", Name: "Coffee", Price: 19.90, Quantity: 3}, api.gotItems[0])
	assert.Equal(t, shopapi.PaymentItem{ProductID: "p2", Name: "Mug", Price: 5.00, Quantity: 1}, api.gotItems[1])
}

func TestInitiatePayment_KeepsCart(t *testing.T) {
	api := &mockPaymentAPI{initPoint: "https://pay.example/x"}
	carts := NewCartService()
	svc := NewCheckoutService(api, carts)
	carts.AddItem("s1", coffee())

	_, err := svc.InitiatePayment(context.Background(), checkoutSession())
	require.NoError(t, err)

	// payment is not confirmed yet; the cart survives the handoff
	assert.Len(t, carts.Get("s1").Lines, 1)
}

func TestInitiatePayment_FailureLeavesStateUntouched(t *testing.T) {
	api := &mockPaymentAPI{err: &shopapi.APIError{Status: 500, Message: "provider unavailable"}}
	carts := NewCartService()
	svc := NewCheckoutService(api, carts)
	carts.AddItem("s1", coffee())

	_, err := svc.InitiatePayment(context.Background(), checkoutSession())
	require.Error(t, err)
	assert.Len(t, carts.Get("s1").Lines, 1)

	// retry is a fresh user action, nothing automatic
	_, err = svc.InitiatePayment(context.Background(), checkoutSession())
	require.Error(t, err)
	assert.Equal(t, 2, api.calls)
}
