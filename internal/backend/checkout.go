package backend

import (
	"context"
	"fmt"

	"github.com/RanganathP76/ecommerce-frontend/internal/model"
)

// ShippingRates returns every configured rate; callers filter on Enabled.
func (c *Client) ShippingRates(ctx context.Context) ([]model.ShippingOption, error) {
	var out []model.ShippingOption
	if err := c.get(ctx, "", "/shipping-rates", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PaymentConfig fetches and shape-checks the payment configuration. Anything
// past this call can trust the type tags.
func (c *Client) PaymentConfig(ctx context.Context) (*model.PaymentConfiguration, error) {
	var out model.PaymentConfiguration
	if err := c.get(ctx, "", "/payment-config/get", &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("payment config rejected: %w", err)
	}
	return &out, nil
}

// CreateOrder posts the immutable submission snapshot and returns the new
// order id. Called exactly once per checkout attempt; the submission guard
// upstream enforces that.
func (c *Client) CreateOrder(ctx context.Context, token string, sub *model.OrderSubmission) (string, error) {
	var out struct {
		ID string `json:"_id"`
	}
	if err := c.postJSON(ctx, token, "/orders", sub, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("backend returned no order id")
	}
	return out.ID, nil
}
