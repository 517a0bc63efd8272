package model

import "fmt"

type PaymentMethod string

const (
	MethodFullPrepaid    PaymentMethod = "fullPrepaid"
	MethodPartialPayment PaymentMethod = "partialPayment"
	MethodCOD            PaymentMethod = "COD"
)

const (
	RatePercent = "percent"
	RateFlat    = "flat"
)

// FullPrepaidConfig describes the pay-everything-online option and the
// discount it earns.
type FullPrepaidConfig struct {
	Enabled       bool    `json:"enabled"`
	DiscountType  string  `json:"discountType"` // percent | flat
	DiscountValue float64 `json:"discountValue"`
}

// PartialPaymentConfig describes the advance-deposit option; the remainder is
// collected on delivery.
type PartialPaymentConfig struct {
	Enabled      bool    `json:"enabled"`
	PartialType  string  `json:"partialType"` // percent | flat
	PartialValue float64 `json:"partialValue"`
}

type CODConfig struct {
	Enabled bool `json:"enabled"`
}

// PaymentConfiguration is fetched from the backend; the three modes toggle
// independently.
type PaymentConfiguration struct {
	FullPrepaid    FullPrepaidConfig    `json:"fullPrepaid"`
	PartialPayment PartialPaymentConfig `json:"partialPayment"`
	COD            CODConfig            `json:"cod"`
}

// Validate checks the shape at the API boundary so nothing downstream has to
// re-check the type tags. Magnitudes are deliberately not checked: a flat
// discount larger than the cart is an operator configuration error, not ours
// to silently repair.
func (c *PaymentConfiguration) Validate() error {
	if c.FullPrepaid.Enabled {
		if t := c.FullPrepaid.DiscountType; t != RatePercent && t != RateFlat {
			return fmt.Errorf("fullPrepaid: unknown discountType %q", t)
		}
		if c.FullPrepaid.DiscountValue < 0 {
			return fmt.Errorf("fullPrepaid: negative discountValue")
		}
	}
	if c.PartialPayment.Enabled {
		if t := c.PartialPayment.PartialType; t != RatePercent && t != RateFlat {
			return fmt.Errorf("partialPayment: unknown partialType %q", t)
		}
		if c.PartialPayment.PartialValue < 0 {
			return fmt.Errorf("partialPayment: negative partialValue")
		}
	}
	return nil
}

func (c *PaymentConfiguration) MethodEnabled(m PaymentMethod) bool {
	switch m {
	case MethodFullPrepaid:
		return c.FullPrepaid.Enabled
	case MethodPartialPayment:
		return c.PartialPayment.Enabled
	case MethodCOD:
		return c.COD.Enabled
	}
	return false
}

// DefaultMethod picks the preselected method the way the checkout page does:
// prepaid first, then advance, then COD.
func (c *PaymentConfiguration) DefaultMethod() (PaymentMethod, bool) {
	switch {
	case c.FullPrepaid.Enabled:
		return MethodFullPrepaid, true
	case c.PartialPayment.Enabled:
		return MethodPartialPayment, true
	case c.COD.Enabled:
		return MethodCOD, true
	}
	return "", false
}

// ShippingOption is one row of GET /shipping-rates.
type ShippingOption struct {
	ID      string  `json:"_id"`
	Name    string  `json:"name"`
	Rate    float64 `json:"rate"`
	Enabled bool    `json:"enabled"`
}

// PriceBreakdown is derived from the current cart and selections on every
// quote; it is never stored. Amounts stay unrounded until submission.
type PriceBreakdown struct {
	ItemsPrice    float64 `json:"itemsPrice"`
	ShippingPrice float64 `json:"shippingPrice"`
	Discount      float64 `json:"discount"`
	Advance       float64 `json:"advance"`
	Total         float64 `json:"total"`
	PayableNow    float64 `json:"payableNow"`
	AmountDue     float64 `json:"amountDue"`
}

// MethodPreviews are the rounded per-method offers shown before a method is
// picked.
type MethodPreviews struct {
	FullPrepaidTotal int64 `json:"fullPrepaidTotal"`
	FullPrepaidSave  int64 `json:"fullPrepaidSave"`
	PartialNow       int64 `json:"partialNow"`
	PartialLater     int64 `json:"partialLater"`
	CODTotal         int64 `json:"codTotal"`
}
