package main

import (
	"net/http"

	"github.com/RanganathP76/ecommerce-frontend/internal/middleware"
	"github.com/RanganathP76/ecommerce-frontend/internal/services"

	"github.com/labstack/echo/v4"
)

func registerOrderRoutes(g *echo.Group, os *services.OrderService) {
	p := g.Group("/orders")

	// Public tracking; the order-confirmation page reads through here too.
	p.GET("/track/:id", func(c echo.Context) error {
		order, err := os.Track(c.Request().Context(), c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusOK, order)
	})

	// Guest order history by email; falls back to the logged-in user's email
	// and then to the one remembered from a previous guest checkout.
	p.GET("/guest", func(c echo.Context) error {
		email := c.QueryParam("email")
		if email == "" {
			if claims := middleware.TryGetClaims(c); claims != nil {
				email = claims.Email
			}
		}
		orders, err := os.Guest(c.Request().Context(), middleware.SessionID(c), email)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if email != "" {
			if err := os.RememberGuestEmail(middleware.SessionID(c), email); err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
			}
		}
		return c.JSON(http.StatusOK, orders)
	})

	// Account order history, login required.
	protected := p.Group("")
	protected.Use(middleware.JWTMiddleware())

	protected.GET("/my", func(c echo.Context) error {
		orders, err := os.My(c.Request().Context(), middleware.RawToken(c))
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, orders)
	})
}
