package main

import (
	"net/http"

	"StorefrontAPI/internal/middleware"
	"StorefrontAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func listMyOrders(os *services.OrderService) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.GetSession(c)
		orders, err := os.ListMy(c.Request().Context(), sess)
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{
				"error": services.Displayable(err, "could not load orders"),
			})
		}
		return c.JSON(http.StatusOK, orders)
	}
}

func getOrder(os *services.OrderService) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.GetSession(c)
		order, err := os.Get(c.Request().Context(), sess, c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{
				"error": services.Displayable(err, "could not load order"),
			})
		}
		return c.JSON(http.StatusOK, order)
	}
}

func registerOrderRoutes(g *echo.Group, os *services.OrderService, protect echo.MiddlewareFunc) {
	orders := g.Group("/orders")
	orders.Use(protect)

	orders.GET("/my", listMyOrders(os))
	orders.GET("/:id", getOrder(os))
}
