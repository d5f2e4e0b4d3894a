package services

import (
	"context"

	"StorefrontAPI/internal/model"
)

type OrderAPI interface {
	MyOrders(ctx context.Context, token string) ([]model.Order, error)
	Order(ctx context.Context, token, id string) (model.Order, error)
}

// OrderService reads orders from the backend. Orders are backend-owned;
// nothing here mutates them.
type OrderService struct {
	API OrderAPI
}

func NewOrderService(api OrderAPI) *OrderService {
	return &OrderService{API: api}
}

func (s *OrderService) ListMy(ctx context.Context, sess *model.Session) ([]model.Order, error) {
	return s.API.MyOrders(ctx, sess.Token)
}

func (s *OrderService) Get(ctx context.Context, sess *model.Session, id string) (model.Order, error) {
	return s.API.Order(ctx, sess.Token, id)
}
