package model

import (
	"errors"
	"fmt"
	"time"
)

// ShippingInfo is the checkout contact form. Country defaults to India when
// left blank, matching the storefront form.
type ShippingInfo struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

var ErrMissingShippingFields = errors.New("missing required shipping fields")

// Validate requires every contact field except country.
func (s *ShippingInfo) Validate() error {
	required := map[string]string{
		"name":       s.Name,
		"email":      s.Email,
		"phone":      s.Phone,
		"address":    s.Address,
		"city":       s.City,
		"postalCode": s.PostalCode,
	}
	for field, v := range required {
		if v == "" {
			return fmt.Errorf("%w: %s", ErrMissingShippingFields, field)
		}
	}
	if s.Country == "" {
		s.Country = "India"
	}
	return nil
}

// PaymentInfo records how an order was (or will be) paid.
type PaymentInfo struct {
	Method PaymentMethod `json:"method"`
	Status string        `json:"status"` // Pending | Paid
	ID     string        `json:"id,omitempty"`
}

// OrderItem is a cart line snapshotted into an order.
type OrderItem struct {
	Product        string               `json:"product"`
	Name           string               `json:"name"`
	Image          string               `json:"image,omitempty"`
	Price          float64              `json:"price"`
	Quantity       int                  `json:"quantity"`
	Specifications []Specification      `json:"specifications,omitempty"`
	Customization  []CustomizationField `json:"customization,omitempty"`
}

// OrderSubmission is the POST /orders payload. Built once per checkout
// attempt; immutable once sent. All currency fields are rounded to whole
// units here and nowhere earlier.
type OrderSubmission struct {
	ShippingInfo     ShippingInfo `json:"shippingInfo"`
	PaymentInfo      PaymentInfo  `json:"paymentInfo"`
	GatewayOrderID   string       `json:"gateway_order_id,omitempty"`
	GatewayPaymentID string       `json:"gateway_payment_id,omitempty"`
	GatewaySignature string       `json:"gateway_signature,omitempty"`
	OrderItems       []OrderItem  `json:"orderItems"`
	ItemsPrice       float64      `json:"itemsPrice"`
	ShippingPrice    float64      `json:"shippingPrice"`
	Discount         float64      `json:"discount"`
	TotalPrice       float64      `json:"totalPrice"`
	AmountPaid       float64      `json:"amountPaid"`
	AmountDue        float64      `json:"amountDue"`
	OrderStatus      string       `json:"orderStatus"`
}

// Order is the read model for tracking, confirmation and order-history views.
type Order struct {
	ID            string       `json:"_id"`
	OrderStatus   string       `json:"orderStatus"`
	ShippingInfo  ShippingInfo `json:"shippingInfo"`
	PaymentInfo   PaymentInfo  `json:"paymentInfo"`
	OrderItems    []OrderItem  `json:"orderItems"`
	ItemsPrice    float64      `json:"itemsPrice"`
	ShippingPrice float64      `json:"shippingPrice"`
	Discount      float64      `json:"discount"`
	TotalPrice    float64      `json:"totalPrice"`
	AmountPaid    float64      `json:"amountPaid"`
	AmountDue     float64      `json:"amountDue"`
	CreatedAt     time.Time    `json:"createdAt"`
}
