package model

import (
	"bytes"
	"math"
	"strconv"
)

// Price is a currency amount as the backend sends it. Some backend records
// carry prices as quoted strings; anything unparsable decodes to 0 instead of
// failing the whole cart.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = 0
		return nil
	}
	if data[0] == '"' {
		data = bytes.Trim(data, `"`)
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*p = 0
		return nil
	}
	*p = Price(v)
	return nil
}

func (p Price) Float() float64 {
	return float64(p)
}

// Specification is a chosen variant value (e.g. Size=M) together with the
// stock the backend reported for that value. A nil stock means the value is
// unconstrained.
type Specification struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Stock *int   `json:"stock,omitempty"`
}

// CustomizationField is a free-form buyer input attached to a cart item,
// either typed text or an uploaded file reference.
type CustomizationField struct {
	Label   string `json:"label"`
	Type    string `json:"type"` // "text" or "file"
	Value   string `json:"value"`
	FileRef string `json:"public_id,omitempty"`
}

// CartItem is one line of the session cart, snapshotted from the product page.
type CartItem struct {
	ProductID      string               `json:"product_id"`
	Title          string               `json:"title"`
	Image          string               `json:"image,omitempty"`
	Price          Price                `json:"price"`
	Quantity       int                  `json:"quantity"`
	Stock          *int                 `json:"stock,omitempty"`
	Specifications []Specification      `json:"specifications,omitempty"`
	Customization  []CustomizationField `json:"customization,omitempty"`
}

// EffectiveQuantity treats a missing or broken quantity as a single unit.
func (i CartItem) EffectiveQuantity() int {
	if i.Quantity < 1 {
		return 1
	}
	return i.Quantity
}

// UnitPrice clamps a negative price to zero; the calculator never rejects a
// malformed item, it just prices it at nothing.
func (i CartItem) UnitPrice() float64 {
	p := i.Price.Float()
	if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return p
}

func (i CartItem) Subtotal() float64 {
	return i.UnitPrice() * float64(i.EffectiveQuantity())
}

// SameSelection reports whether two lines are the same product with the same
// variant values and customization inputs, i.e. mergeable in the cart.
func (i CartItem) SameSelection(other CartItem) bool {
	if i.ProductID != other.ProductID {
		return false
	}
	if len(i.Specifications) != len(other.Specifications) ||
		len(i.Customization) != len(other.Customization) {
		return false
	}
	for n, s := range i.Specifications {
		o := other.Specifications[n]
		if s.Key != o.Key || s.Value != o.Value {
			return false
		}
	}
	for n, cu := range i.Customization {
		o := other.Customization[n]
		if cu.Label != o.Label || cu.Type != o.Type || cu.Value != o.Value {
			return false
		}
	}
	return true
}

// CartResponse is returned by GET /storefront/cart.
type CartResponse struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}
