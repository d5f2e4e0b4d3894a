package main

import (
	"context"
	"net/http"

	"StorefrontAPI/internal/middleware"
	"StorefrontAPI/internal/poller"

	"github.com/labstack/echo/v4"
)

// paymentStatus serves the confirmation page after the payment provider
// redirects back. The first request starts the watch; later requests return
// the latest snapshot. Watches run on the app context, not the request
// context, so they keep polling between requests and die with the app.
func paymentStatus(appCtx context.Context, watcher *poller.Watcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.GetSession(c)
		orderID := c.Param("orderId")
		if orderID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "order id is required"})
		}

		watch := watcher.Start(appCtx, sess, orderID)
		return c.JSON(http.StatusOK, watch.Snapshot())
	}
}

// cancelPaymentWatch is the teardown signal: leaving the confirmation view
// must stop the polling loop so no timer outlives it.
func cancelPaymentWatch(watcher *poller.Watcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.GetSession(c)
		watcher.Cancel(sess.ID, c.Param("orderId"))
		return c.NoContent(http.StatusNoContent)
	}
}

func registerPaymentRoutes(appCtx context.Context, g *echo.Group, watcher *poller.Watcher, protect echo.MiddlewareFunc) {
	payments := g.Group("/payments")
	payments.Use(protect)

	payments.GET("/:orderId/status", paymentStatus(appCtx, watcher))
	payments.DELETE("/:orderId/watch", cancelPaymentWatch(watcher))
}
