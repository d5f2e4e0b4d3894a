package main

import (
	"errors"
	"net/http"

	"StorefrontAPI/internal/middleware"
	"StorefrontAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func checkoutHandler(cs *services.CheckoutService) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.GetSession(c)

		initPoint, err := cs.InitiatePayment(c.Request().Context(), sess)
		if err != nil {
			if errors.Is(err, services.ErrEmptyCart) {
				// no request was issued; the client shows the empty-cart view
				return c.JSON(http.StatusBadRequest, echo.Map{
					"error": "cart is empty",
				})
			}
			// transient: cart and session are untouched, the user may retry
			return c.JSON(http.StatusBadGateway, echo.Map{
				"error": services.Displayable(err, "could not start payment, please try again"),
			})
		}

		// the client performs a full navigation to the hosted payment page;
		// the cart is kept until the payment is confirmed approved
		return c.JSON(http.StatusOK, echo.Map{
			"init_point": initPoint,
		})
	}
}

func registerCheckoutRoutes(g *echo.Group, cs *services.CheckoutService, protect echo.MiddlewareFunc) {
	checkout := g.Group("/checkout")
	checkout.Use(protect)

	checkout.POST("", checkoutHandler(cs))
}
