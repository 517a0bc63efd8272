package main

import (
	"errors"
	"net/http"

	"github.com/RanganathP76/ecommerce-frontend/internal/backend"
	"github.com/RanganathP76/ecommerce-frontend/internal/middleware"
	"github.com/RanganathP76/ecommerce-frontend/internal/model"
	"github.com/RanganathP76/ecommerce-frontend/internal/services"

	"github.com/labstack/echo/v4"
)

type quoteRequest struct {
	ShippingOptionID string              `json:"shipping_option_id"`
	Method           model.PaymentMethod `json:"method"`
}

func registerCheckoutRoutes(g *echo.Group, cs *services.CheckoutService) {
	p := g.Group("/checkout")

	// Everything the checkout page renders from: rates, payment config,
	// per-method previews for this cart.
	p.GET("/options", func(c echo.Context) error {
		opts, err := cs.Options(
			c.Request().Context(),
			middleware.SessionID(c),
			c.QueryParam("shipping_option_id"),
		)
		if err != nil {
			return checkoutError(c, err)
		}
		return c.JSON(http.StatusOK, opts)
	})

	// Live price breakdown for one shipping + method selection.
	p.POST("/quote", func(c echo.Context) error {
		req := new(quoteRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		q, err := cs.QuoteFor(
			c.Request().Context(),
			middleware.SessionID(c),
			req.ShippingOptionID,
			req.Method,
		)
		if err != nil {
			return checkoutError(c, err)
		}
		return c.JSON(http.StatusOK, q)
	})

	// Place order: COD finalizes here; prepaid answers with the gateway
	// reference the widget needs.
	p.POST("/place-order", func(c echo.Context) error {
		req := new(services.PlaceOrderRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		res, err := cs.PlaceOrder(
			c.Request().Context(),
			middleware.SessionID(c),
			middleware.RawToken(c),
			*req,
		)
		if err != nil {
			return checkoutError(c, err)
		}
		status := http.StatusOK
		if res.State == services.StateFinalized {
			status = http.StatusCreated
		}
		return c.JSON(status, res)
	})

	// Widget success callback.
	p.POST("/confirm", func(c echo.Context) error {
		conf := new(services.GatewayConfirmation)
		if err := c.Bind(conf); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		res, err := cs.Confirm(c.Request().Context(), middleware.SessionID(c), *conf)
		if err != nil {
			return checkoutError(c, err)
		}
		return c.JSON(http.StatusCreated, res)
	})

	// Widget dismissed: not an error, the guard just resets.
	p.POST("/cancel", func(c echo.Context) error {
		if err := cs.Cancel(middleware.SessionID(c)); err != nil {
			return checkoutError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"state": services.StateIdle})
	})

	p.GET("/state", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"state": cs.State(middleware.SessionID(c))})
	})
}

func checkoutError(c echo.Context, err error) error {
	var apiErr *backend.APIError
	switch {
	case errors.Is(err, services.ErrCheckoutInProgress):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, model.ErrMissingShippingFields),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrShippingOptionUnavailable),
		errors.Is(err, services.ErrPaymentMethodDisabled),
		errors.Is(err, services.ErrNoPendingPayment),
		errors.Is(err, services.ErrInvalidSignature):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.As(err, &apiErr):
		// surface the backend's message, the way the client alerted it
		return c.JSON(http.StatusBadGateway, echo.Map{"error": apiErr.Message})
	}
	var stockErr *services.OutOfStockError
	if errors.As(err, &stockErr) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}
