package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RanganathP76/ecommerce-frontend/internal/model"
	"github.com/RanganathP76/ecommerce-frontend/internal/store"
)

func newCartService() (*CartService, string) {
	return NewCartService(store.New(store.NewMemoryAdapter())), "sess-cart"
}

func mugItem() model.CartItem {
	return model.CartItem{
		ProductID: "p1",
		Title:     "Photo Mug",
		Price:     499,
		Quantity:  1,
		Specifications: []model.Specification{
			{Key: "Size", Value: "325ml"},
		},
		Customization: []model.CustomizationField{
			{Label: "Name", Type: "text", Value: "Asha"},
		},
	}
}

func TestCartAddMergesSameSelection(t *testing.T) {
	svc, sess := newCartService()

	require.NoError(t, svc.Add(sess, mugItem()))
	require.NoError(t, svc.Add(sess, mugItem()))

	cart, err := svc.Get(sess)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.InDelta(t, 998, cart.Total, 1e-9)
}

func TestCartAddDifferentCustomizationIsNewLine(t *testing.T) {
	svc, sess := newCartService()

	require.NoError(t, svc.Add(sess, mugItem()))
	other := mugItem()
	other.Customization[0].Value = "Ravi"
	require.NoError(t, svc.Add(sess, other))

	cart, err := svc.Get(sess)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

func TestCartAddDifferentSpecificationIsNewLine(t *testing.T) {
	svc, sess := newCartService()

	require.NoError(t, svc.Add(sess, mugItem()))
	other := mugItem()
	other.Specifications[0].Value = "450ml"
	require.NoError(t, svc.Add(sess, other))

	cart, err := svc.Get(sess)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

func TestCartAddRequiresProductID(t *testing.T) {
	svc, sess := newCartService()
	assert.Error(t, svc.Add(sess, model.CartItem{Title: "no id"}))
}

func TestCartReplaceIsBuyNow(t *testing.T) {
	svc, sess := newCartService()

	require.NoError(t, svc.Add(sess, mugItem()))
	frame := model.CartItem{ProductID: "p2", Title: "Frame", Price: 899, Quantity: 1}
	require.NoError(t, svc.Replace(sess, frame))

	cart, err := svc.Get(sess)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
}

func TestCartUpdateQuantity(t *testing.T) {
	svc, sess := newCartService()
	require.NoError(t, svc.Add(sess, mugItem()))

	require.NoError(t, svc.UpdateQuantity(sess, 0, 5))
	cart, err := svc.Get(sess)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	assert.Error(t, svc.UpdateQuantity(sess, 0, 0), "quantity floor is 1")
	assert.ErrorIs(t, svc.UpdateQuantity(sess, 3, 2), ErrItemNotFound)
}

func TestCartRemoveByIndex(t *testing.T) {
	svc, sess := newCartService()
	require.NoError(t, svc.Add(sess, mugItem()))
	frame := model.CartItem{ProductID: "p2", Title: "Frame", Price: 899, Quantity: 1}
	require.NoError(t, svc.Add(sess, frame))

	require.NoError(t, svc.Remove(sess, 0))
	cart, err := svc.Get(sess)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)

	assert.ErrorIs(t, svc.Remove(sess, 5), ErrItemNotFound)
}

func TestCartClear(t *testing.T) {
	svc, sess := newCartService()
	require.NoError(t, svc.Add(sess, mugItem()))
	require.NoError(t, svc.Clear(sess))

	cart, err := svc.Get(sess)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
}

func TestCartShippingDraftRoundTrip(t *testing.T) {
	svc, sess := newCartService()

	draft, err := svc.Shipping(sess)
	require.NoError(t, err)
	assert.Nil(t, draft, "no draft for a fresh session")

	info := model.ShippingInfo{Name: "Asha", City: "Bengaluru"}
	require.NoError(t, svc.SaveShipping(sess, info))

	draft, err = svc.Shipping(sess)
	require.NoError(t, err)
	require.NotNil(t, draft)
	assert.Equal(t, "Asha", draft.Name)
}

func TestCartSessionsAreIsolated(t *testing.T) {
	svc, sess := newCartService()
	require.NoError(t, svc.Add(sess, mugItem()))

	other, err := svc.Get("sess-other")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}
