package main

import (
	"net/http"

	"github.com/RanganathP76/ecommerce-frontend/internal/services"

	"github.com/labstack/echo/v4"
)

func registerPaymentRoutes(g *echo.Group, cs *services.CheckoutService) {
	p := g.Group("/payments")

	// ============================
	// GATEWAY NOTIFICATION
	// (NO JWT, must be public)
	// ============================
	p.POST("/notification", func(c echo.Context) error {
		var payload map[string]interface{}
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusOK, echo.Map{
				"status": "ignored",
				"reason": "invalid payload",
			})
		}

		if err := cs.HandleGatewayNotification(
			c.Request().Context(),
			payload,
		); err != nil {
			// The gateway retries on anything but 200.
			return c.JSON(http.StatusOK, echo.Map{
				"status": "ignored",
				"reason": err.Error(),
			})
		}

		return c.JSON(http.StatusOK, echo.Map{
			"status": "ok",
		})
	})
}
