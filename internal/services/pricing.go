package services

import (
	"fmt"
	"math"

	"github.com/RanganathP76/ecommerce-frontend/internal/model"
)

// Pricing is pure arithmetic over the cart and the fetched payment
// configuration. Amounts stay float64 until an order submission is built;
// rounding once at submission avoids compounding rounding mid-edit.

// ItemsPrice sums price*quantity, pricing malformed items at zero.
func ItemsPrice(items []model.CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Subtotal()
	}
	return sum
}

// fullPrepaidDiscount is the raw discount offer, independent of whether the
// method is actually selected.
func fullPrepaidDiscount(cfg *model.PaymentConfiguration, itemsPrice float64) float64 {
	if !cfg.FullPrepaid.Enabled {
		return 0
	}
	if cfg.FullPrepaid.DiscountType == model.RatePercent {
		return itemsPrice * cfg.FullPrepaid.DiscountValue / 100
	}
	return cfg.FullPrepaid.DiscountValue
}

// partialAdvance is the raw deposit offer.
func partialAdvance(cfg *model.PaymentConfiguration, itemsPrice float64) float64 {
	if !cfg.PartialPayment.Enabled {
		return 0
	}
	if cfg.PartialPayment.PartialType == model.RatePercent {
		return itemsPrice * cfg.PartialPayment.PartialValue / 100
	}
	return cfg.PartialPayment.PartialValue
}

// Quote computes the breakdown for one shipping + payment-method selection.
// A nil shipping option contributes no shipping charge. The discount is not
// clamped to itemsPrice; a flat discount above the cart total is an operator
// configuration error and shows up as a negative total rather than being
// silently repaired.
func Quote(items []model.CartItem, shipping *model.ShippingOption, cfg *model.PaymentConfiguration, method model.PaymentMethod) model.PriceBreakdown {
	itemsPrice := ItemsPrice(items)

	var shippingPrice float64
	if shipping != nil {
		shippingPrice = shipping.Rate
	}

	var discount, advance float64
	if method == model.MethodFullPrepaid {
		discount = fullPrepaidDiscount(cfg, itemsPrice)
	}
	if method == model.MethodPartialPayment {
		advance = partialAdvance(cfg, itemsPrice)
	}

	total := itemsPrice + shippingPrice - discount

	var payableNow float64
	switch method {
	case model.MethodPartialPayment:
		payableNow = advance
	case model.MethodFullPrepaid:
		payableNow = total
	case model.MethodCOD:
		payableNow = 0
	}

	return model.PriceBreakdown{
		ItemsPrice:    itemsPrice,
		ShippingPrice: shippingPrice,
		Discount:      discount,
		Advance:       advance,
		Total:         total,
		PayableNow:    payableNow,
		AmountDue:     total - payableNow,
	}
}

// Previews are the rounded offers the checkout page shows for every method at
// once, before anything is selected.
func Previews(items []model.CartItem, shipping *model.ShippingOption, cfg *model.PaymentConfiguration) model.MethodPreviews {
	itemsPrice := ItemsPrice(items)
	var shippingPrice float64
	if shipping != nil {
		shippingPrice = shipping.Rate
	}
	discount := fullPrepaidDiscount(cfg, itemsPrice)
	advance := partialAdvance(cfg, itemsPrice)

	return model.MethodPreviews{
		FullPrepaidTotal: roundUnit(itemsPrice + shippingPrice - discount),
		FullPrepaidSave:  roundUnit(discount),
		PartialNow:       roundUnit(advance),
		PartialLater:     roundUnit(itemsPrice + shippingPrice - advance),
		CODTotal:         roundUnit(itemsPrice + shippingPrice),
	}
}

func roundUnit(v float64) int64 {
	return int64(math.Round(v))
}

// ValidateStock checks every cart line. Lines with chosen specifications are
// judged per specification value; otherwise the item's own stock applies. A
// missing stock field means unconstrained, not out of stock.
func ValidateStock(items []model.CartItem) error {
	for _, it := range items {
		qty := it.EffectiveQuantity()
		if len(it.Specifications) > 0 {
			for _, spec := range it.Specifications {
				if spec.Stock != nil && *spec.Stock < qty {
					return &OutOfStockError{Title: it.Title, Spec: spec.Key + "=" + spec.Value}
				}
			}
			continue
		}
		if it.Stock != nil && *it.Stock < qty {
			return &OutOfStockError{Title: it.Title}
		}
	}
	return nil
}

// OutOfStockError names the failing line so the user message can.
type OutOfStockError struct {
	Title string
	Spec  string
}

func (e *OutOfStockError) Error() string {
	if e.Spec != "" {
		return fmt.Sprintf("out of stock: %s (%s)", e.Title, e.Spec)
	}
	return fmt.Sprintf("out of stock: %s", e.Title)
}

// BuildSubmission snapshots the cart and breakdown into the immutable order
// payload. This is the only place currency amounts are rounded.
func BuildSubmission(items []model.CartItem, shipping model.ShippingInfo, q model.PriceBreakdown, method model.PaymentMethod, status string) *model.OrderSubmission {
	orderItems := make([]model.OrderItem, 0, len(items))
	for _, it := range items {
		orderItems = append(orderItems, model.OrderItem{
			Product:        it.ProductID,
			Name:           it.Title,
			Image:          it.Image,
			Price:          it.UnitPrice(),
			Quantity:       it.EffectiveQuantity(),
			Specifications: it.Specifications,
			Customization:  it.Customization,
		})
	}

	payable := float64(roundUnit(q.PayableNow))
	total := float64(roundUnit(q.Total))

	return &model.OrderSubmission{
		ShippingInfo:  shipping,
		PaymentInfo:   model.PaymentInfo{Method: method, Status: status},
		OrderItems:    orderItems,
		ItemsPrice:    float64(roundUnit(q.ItemsPrice)),
		ShippingPrice: float64(roundUnit(q.ShippingPrice)),
		Discount:      float64(roundUnit(q.Discount)),
		TotalPrice:    total,
		AmountPaid:    payable,
		AmountDue:     total - payable,
		OrderStatus:   "Processing",
	}
}
