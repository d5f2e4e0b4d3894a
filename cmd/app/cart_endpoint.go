package main

import (
	"net/http"

	"StorefrontAPI/internal/middleware"
	"StorefrontAPI/internal/model"
	"StorefrontAPI/internal/services"

	"github.com/labstack/echo/v4"
)

// addItemRequest carries the product as shown on the listing; the cart is a
// view-side accumulation, not a backend resource.
type addItemRequest struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func cartResponse(cart model.Cart) model.CartResponse {
	subtotal := cart.Subtotal()
	return model.CartResponse{
		Lines:         cart.Lines,
		SubtotalCents: subtotal,
		Subtotal:      subtotal.String(),
	}
}

func getCart(carts *services.CartService) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.GetSession(c)
		return c.JSON(http.StatusOK, cartResponse(carts.Get(sess.ID)))
	}
}

func addCartItem(carts *services.CartService) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.GetSession(c)
		req := new(addItemRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if req.ProductID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "product_id is required"})
		}

		cart := carts.AddItem(sess.ID, model.Product{
			ID:       req.ProductID,
			Name:     req.Name,
			Price:    model.CentsFromFloat(req.Price),
			Image:    req.Image,
			Category: req.Category,
		})
		return c.JSON(http.StatusOK, cartResponse(cart))
	}
}

func setCartQuantity(carts *services.CartService) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.GetSession(c)
		req := new(setQuantityRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		// quantity <= 0 is a no-op by design, not a removal
		cart := carts.SetQuantity(sess.ID, c.Param("productId"), req.Quantity)
		return c.JSON(http.StatusOK, cartResponse(cart))
	}
}

func removeCartItem(carts *services.CartService) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.GetSession(c)
		cart := carts.RemoveItem(sess.ID, c.Param("productId"))
		return c.JSON(http.StatusOK, cartResponse(cart))
	}
}

func clearCart(carts *services.CartService) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.GetSession(c)
		carts.Clear(sess.ID)
		return c.JSON(http.StatusOK, cartResponse(model.Cart{}))
	}
}

func registerCartRoutes(g *echo.Group, carts *services.CartService, protect echo.MiddlewareFunc) {
	cart := g.Group("/cart")
	cart.Use(protect)

	cart.GET("", getCart(carts))
	cart.DELETE("", clearCart(carts))
	cart.POST("/items", addCartItem(carts))
	cart.PUT("/items/:productId", setCartQuantity(carts))
	cart.DELETE("/items/:productId", removeCartItem(carts))
}
