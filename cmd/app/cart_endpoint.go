package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RanganathP76/ecommerce-frontend/internal/middleware"
	"github.com/RanganathP76/ecommerce-frontend/internal/model"
	"github.com/RanganathP76/ecommerce-frontend/internal/services"

	"github.com/labstack/echo/v4"
)

type updateCartRequest struct {
	Qty int `json:"quantity"`
}

func registerCartRoutes(g *echo.Group, cs *services.CartService) {
	p := g.Group("/cart")

	// GET cart
	p.GET("", func(c echo.Context) error {
		cart, err := cs.Get(middleware.SessionID(c))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cart)
	})

	// ADD item
	p.POST("", func(c echo.Context) error {
		item := new(model.CartItem)
		if err := c.Bind(item); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := cs.Add(middleware.SessionID(c), *item); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"message": "added"})
	})

	// BUY NOW: cart becomes exactly this item
	p.POST("/buy-now", func(c echo.Context) error {
		item := new(model.CartItem)
		if err := c.Bind(item); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := cs.Replace(middleware.SessionID(c), *item); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "cart replaced"})
	})

	// UPDATE quantity for one line
	p.PUT("/:index", func(c echo.Context) error {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid index"})
		}
		req := new(updateCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := cs.UpdateQuantity(middleware.SessionID(c), index, req.Qty); err != nil {
			return cartError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})

	// REMOVE one line
	p.DELETE("/:index", func(c echo.Context) error {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid index"})
		}
		if err := cs.Remove(middleware.SessionID(c), index); err != nil {
			return cartError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "removed"})
	})

	// CLEAR cart
	p.DELETE("", func(c echo.Context) error {
		if err := cs.Clear(middleware.SessionID(c)); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "cleared"})
	})

	// Shipping draft, saved so a page reload keeps the form
	p.GET("/shipping", func(c echo.Context) error {
		info, err := cs.Shipping(middleware.SessionID(c))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		if info == nil {
			return c.JSON(http.StatusOK, echo.Map{})
		}
		return c.JSON(http.StatusOK, info)
	})

	p.PUT("/shipping", func(c echo.Context) error {
		info := new(model.ShippingInfo)
		if err := c.Bind(info); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := cs.SaveShipping(middleware.SessionID(c), *info); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "saved"})
	})
}

func cartError(c echo.Context, err error) error {
	status := http.StatusBadRequest
	if errors.Is(err, services.ErrItemNotFound) {
		status = http.StatusNotFound
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}
