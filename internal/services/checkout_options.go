package services

import (
	"context"

	"github.com/RanganathP76/ecommerce-frontend/internal/model"
)

// CheckoutOptions is everything the checkout page needs to render: enabled
// shipping rates, the payment configuration, the preselected method and the
// per-method price previews for the current cart.
type CheckoutOptions struct {
	ShippingRates []model.ShippingOption      `json:"shippingRates"`
	PaymentConfig *model.PaymentConfiguration `json:"paymentConfig"`
	DefaultMethod model.PaymentMethod         `json:"defaultMethod,omitempty"`
	Previews      model.MethodPreviews        `json:"previews"`
}

// Options fetches rates and payment config and computes previews against the
// session cart. shippingOptionID picks the previewed rate; empty means the
// first enabled one, matching the page's default selection.
func (s *CheckoutService) Options(ctx context.Context, sessionID, shippingOptionID string) (*CheckoutOptions, error) {
	rates, err := s.Backend.ShippingRates(ctx)
	if err != nil {
		return nil, err
	}
	enabled := rates[:0]
	for _, r := range rates {
		if r.Enabled {
			enabled = append(enabled, r)
		}
	}

	cfg, err := s.Backend.PaymentConfig(ctx)
	if err != nil {
		return nil, err
	}

	st, err := s.Store.Load(sessionID)
	if err != nil {
		return nil, err
	}

	var selected *model.ShippingOption
	for i := range enabled {
		if shippingOptionID == "" || enabled[i].ID == shippingOptionID {
			selected = &enabled[i]
			break
		}
	}

	opts := &CheckoutOptions{
		ShippingRates: enabled,
		PaymentConfig: cfg,
		Previews:      Previews(st.Cart, selected, cfg),
	}
	if m, ok := cfg.DefaultMethod(); ok {
		opts.DefaultMethod = m
	}
	return opts, nil
}

// QuoteFor prices the session cart for one shipping + method selection. Live
// display values, deliberately unrounded.
func (s *CheckoutService) QuoteFor(ctx context.Context, sessionID, shippingOptionID string, method model.PaymentMethod) (*model.PriceBreakdown, error) {
	rates, err := s.Backend.ShippingRates(ctx)
	if err != nil {
		return nil, err
	}
	var opt *model.ShippingOption
	for i := range rates {
		if rates[i].ID == shippingOptionID && rates[i].Enabled {
			opt = &rates[i]
			break
		}
	}
	if opt == nil {
		return nil, ErrShippingOptionUnavailable
	}

	cfg, err := s.Backend.PaymentConfig(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.MethodEnabled(method) {
		return nil, ErrPaymentMethodDisabled
	}

	st, err := s.Store.Load(sessionID)
	if err != nil {
		return nil, err
	}

	q := Quote(st.Cart, opt, cfg, method)
	return &q, nil
}
