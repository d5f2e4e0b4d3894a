package services

import (
	"sync"

	"StorefrontAPI/internal/model"
)

// CartService keeps each session's cart in process memory only. Carts do not
// survive a restart; once the backend persists an order, the order is the
// system of record, not the cart. Mutations are last-write-wins.
type CartService struct {
	mu    sync.Mutex
	carts map[string]*model.Cart
}

func NewCartService() *CartService {
	return &CartService{carts: make(map[string]*model.Cart)}
}

// Get returns a copy of the session's cart with the subtotal recomputed.
func (s *CartService) Get(sessionID string) model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[sessionID]
	if cart == nil {
		return model.Cart{}
	}
	lines := make([]model.CartLine, len(cart.Lines))
	copy(lines, cart.Lines)
	return model.Cart{Lines: lines}
}

// AddItem increments the quantity for a product already in the cart, or
// appends a new line with quantity 1. Always succeeds; stock limits are the
// backend's responsibility.
func (s *CartService) AddItem(sessionID string, p model.Product) model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[sessionID]
	if cart == nil {
		cart = &model.Cart{}
		s.carts[sessionID] = cart
	}
	for i := range cart.Lines {
		if cart.Lines[i].ProductID == p.ID {
			cart.Lines[i].Quantity++
			return s.snapshot(cart)
		}
	}
	cart.Lines = append(cart.Lines, model.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
		Image:     p.Image,
		Category:  p.Category,
	})
	return s.snapshot(cart)
}

// SetQuantity replaces the line's quantity. A quantity of zero or less is a
// no-op: the line is kept at its current quantity, not removed.
func (s *CartService) SetQuantity(sessionID, productID string, quantity int) model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[sessionID]
	if cart == nil {
		return model.Cart{}
	}
	if quantity <= 0 {
		return s.snapshot(cart)
	}
	for i := range cart.Lines {
		if cart.Lines[i].ProductID == productID {
			cart.Lines[i].Quantity = quantity
			break
		}
	}
	return s.snapshot(cart)
}

// RemoveItem deletes the line if present; removing an absent product is a
// no-op.
func (s *CartService) RemoveItem(sessionID, productID string) model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[sessionID]
	if cart == nil {
		return model.Cart{}
	}
	for i, l := range cart.Lines {
		if l.ProductID == productID {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			break
		}
	}
	return s.snapshot(cart)
}

// Clear empties the cart unconditionally.
func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Subtotal recomputes the cart total on every call.
func (s *CartService) Subtotal(sessionID string) model.Cents {
	return s.Get(sessionID).Subtotal()
}

func (s *CartService) snapshot(cart *model.Cart) model.Cart {
	lines := make([]model.CartLine, len(cart.Lines))
	copy(lines, cart.Lines)
	return model.Cart{Lines: lines}
}
