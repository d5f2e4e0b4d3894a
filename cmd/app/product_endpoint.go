package main

import (
	"errors"
	"net/http"

	"StorefrontAPI/external/shopapi"
	"StorefrontAPI/internal/middleware"
	"StorefrontAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func listProducts(ps *services.ProductService) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.GetSession(c)
		products, err := ps.List(c.Request().Context(), sess)
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{
				"error": services.Displayable(err, "could not load products"),
			})
		}
		return c.JSON(http.StatusOK, products)
	}
}

func createProduct(ps *services.ProductService) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.GetSession(c)
		var in shopapi.ProductInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		product, err := ps.Create(c.Request().Context(), sess, in)
		if err != nil {
			return productError(c, err, "could not create product")
		}
		return c.JSON(http.StatusCreated, product)
	}
}

func updateProduct(ps *services.ProductService) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.GetSession(c)
		var in shopapi.ProductInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		product, err := ps.Update(c.Request().Context(), sess, c.Param("id"), in)
		if err != nil {
			return productError(c, err, "could not update product")
		}
		return c.JSON(http.StatusOK, product)
	}
}

func deleteProduct(ps *services.ProductService) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.GetSession(c)
		if err := ps.Delete(c.Request().Context(), sess, c.Param("id")); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{
				"error": services.Displayable(err, "could not delete product"),
			})
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func productError(c echo.Context, err error, fallback string) error {
	var fieldErrs services.FieldErrors
	if errors.As(err, &fieldErrs) {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": fieldErrs})
	}
	return c.JSON(http.StatusBadGateway, echo.Map{
		"error": services.Displayable(err, fallback),
	})
}

func registerProductRoutes(g *echo.Group, ps *services.ProductService, protect echo.MiddlewareFunc) {
	products := g.Group("/products")
	products.Use(protect)

	products.GET("", listProducts(ps))
	products.POST("", createProduct(ps))
	products.PUT("/:id", updateProduct(ps))
	products.DELETE("/:id", deleteProduct(ps))
}
