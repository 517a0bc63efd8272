package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RanganathP76/ecommerce-frontend/internal/model"
)

func intPtr(v int) *int { return &v }

func testConfig() *model.PaymentConfiguration {
	return &model.PaymentConfiguration{
		FullPrepaid: model.FullPrepaidConfig{
			Enabled:       true,
			DiscountType:  model.RatePercent,
			DiscountValue: 10,
		},
		PartialPayment: model.PartialPaymentConfig{
			Enabled:      true,
			PartialType:  model.RateFlat,
			PartialValue: 200,
		},
		COD: model.CODConfig{Enabled: true},
	}
}

func testShipping() *model.ShippingOption {
	return &model.ShippingOption{ID: "ship1", Name: "Standard", Rate: 50, Enabled: true}
}

func TestItemsPrice(t *testing.T) {
	items := []model.CartItem{
		{ProductID: "a", Price: 100, Quantity: 2},
		{ProductID: "b", Price: 49.5, Quantity: 1},
	}
	assert.InDelta(t, 249.5, ItemsPrice(items), 1e-9)
}

func TestItemsPriceCoercesMalformedInput(t *testing.T) {
	items := []model.CartItem{
		{ProductID: "a", Price: -10, Quantity: 3}, // negative priced at 0
		{ProductID: "b", Price: 100, Quantity: 0}, // zero quantity counts as 1
	}
	assert.InDelta(t, 100, ItemsPrice(items), 1e-9)
}

func TestQuoteCOD(t *testing.T) {
	items := []model.CartItem{{ProductID: "a", Price: 500, Quantity: 2}}
	q := Quote(items, testShipping(), testConfig(), model.MethodCOD)

	assert.Zero(t, q.Discount, "COD never earns the prepaid discount")
	assert.Zero(t, q.PayableNow, "COD collects everything on delivery")
	assert.InDelta(t, 1050, q.Total, 1e-9)
	assert.InDelta(t, 1050, q.AmountDue, 1e-9)
}

func TestQuoteFullPrepaidPercentDiscount(t *testing.T) {
	items := []model.CartItem{{ProductID: "a", Price: 1000, Quantity: 1}}
	q := Quote(items, testShipping(), testConfig(), model.MethodFullPrepaid)

	assert.InDelta(t, 100, q.Discount, 1e-9)
	assert.InDelta(t, 50+900, q.Total, 1e-9)
	assert.InDelta(t, q.Total, q.PayableNow, 1e-9)
	assert.Zero(t, q.AmountDue)
}

func TestQuotePartialFlatAdvance(t *testing.T) {
	items := []model.CartItem{{ProductID: "a", Price: 3000, Quantity: 1}}
	q := Quote(items, testShipping(), testConfig(), model.MethodPartialPayment)

	assert.InDelta(t, 200, q.PayableNow, 1e-9, "flat advance ignores itemsPrice")
	assert.InDelta(t, q.Total-200, q.AmountDue, 1e-9)
	assert.Zero(t, q.Discount)
}

func TestQuoteDisabledModesContributeNothing(t *testing.T) {
	cfg := testConfig()
	cfg.FullPrepaid.Enabled = false
	items := []model.CartItem{{ProductID: "a", Price: 1000, Quantity: 1}}

	q := Quote(items, testShipping(), cfg, model.MethodFullPrepaid)
	assert.Zero(t, q.Discount)
	assert.InDelta(t, 1050, q.Total, 1e-9)
}

func TestQuoteDiscountNotClamped(t *testing.T) {
	// a flat discount above the cart total is an operator configuration
	// error; it flows through as a negative total instead of being repaired
	cfg := testConfig()
	cfg.FullPrepaid.DiscountType = model.RateFlat
	cfg.FullPrepaid.DiscountValue = 5000
	items := []model.CartItem{{ProductID: "a", Price: 1000, Quantity: 1}}

	q := Quote(items, testShipping(), cfg, model.MethodFullPrepaid)
	assert.InDelta(t, 1000+50-5000, q.Total, 1e-9)
}

func TestQuoteNilShipping(t *testing.T) {
	items := []model.CartItem{{ProductID: "a", Price: 100, Quantity: 1}}
	q := Quote(items, nil, testConfig(), model.MethodCOD)
	assert.Zero(t, q.ShippingPrice)
	assert.InDelta(t, 100, q.Total, 1e-9)
}

func TestPreviews(t *testing.T) {
	items := []model.CartItem{{ProductID: "a", Price: 999.4, Quantity: 1}}
	p := Previews(items, testShipping(), testConfig())

	// 999.4 + 50 - 99.94 = 949.46
	assert.Equal(t, int64(949), p.FullPrepaidTotal)
	assert.Equal(t, int64(100), p.FullPrepaidSave)
	assert.Equal(t, int64(200), p.PartialNow)
	assert.Equal(t, int64(849), p.PartialLater)
	assert.Equal(t, int64(1049), p.CODTotal)
}

func TestValidateStockPerSpecification(t *testing.T) {
	out := model.CartItem{
		ProductID: "a", Title: "Mug", Quantity: 1,
		Specifications: []model.Specification{{Key: "Size", Value: "M", Stock: intPtr(0)}},
	}
	err := ValidateStock([]model.CartItem{out})
	require.Error(t, err)
	var stockErr *OutOfStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Mug", stockErr.Title)

	in := out
	in.Specifications = []model.Specification{{Key: "Size", Value: "M", Stock: intPtr(5)}}
	assert.NoError(t, ValidateStock([]model.CartItem{in}))
}

func TestValidateStockItemLevel(t *testing.T) {
	item := model.CartItem{ProductID: "a", Title: "Frame", Quantity: 3, Stock: intPtr(2)}
	assert.Error(t, ValidateStock([]model.CartItem{item}))

	item.Stock = intPtr(3)
	assert.NoError(t, ValidateStock([]model.CartItem{item}))
}

func TestValidateStockMissingStockIsUnconstrained(t *testing.T) {
	items := []model.CartItem{
		{ProductID: "a", Quantity: 99},
		{ProductID: "b", Quantity: 99, Specifications: []model.Specification{{Key: "Size", Value: "L"}}},
	}
	assert.NoError(t, ValidateStock(items))
}

func TestBuildSubmissionRoundsOnce(t *testing.T) {
	items := []model.CartItem{{ProductID: "a", Title: "Mug", Price: 333.4, Quantity: 3}}
	cfg := testConfig()
	q := Quote(items, testShipping(), cfg, model.MethodFullPrepaid)

	sub := BuildSubmission(items, model.ShippingInfo{Name: "A"}, q, model.MethodFullPrepaid, "Paid")

	// 1000.2 items, 100.02 discount, 950.18 total -> rounded at submission
	assert.InDelta(t, 1000, sub.ItemsPrice, 1e-9)
	assert.InDelta(t, 100, sub.Discount, 1e-9)
	assert.InDelta(t, 950, sub.TotalPrice, 1e-9)
	assert.InDelta(t, 950, sub.AmountPaid, 1e-9)
	assert.Zero(t, sub.AmountDue)
	assert.Equal(t, "Processing", sub.OrderStatus)
	require.Len(t, sub.OrderItems, 1)
	assert.Equal(t, 3, sub.OrderItems[0].Quantity)
	assert.InDelta(t, 333.4, sub.OrderItems[0].Price, 1e-9, "line prices stay exact")
}
