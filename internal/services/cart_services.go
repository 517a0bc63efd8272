package services

import (
	"errors"

	"github.com/RanganathP76/ecommerce-frontend/internal/model"
	"github.com/RanganathP76/ecommerce-frontend/internal/store"
)

// CartService keeps the session cart and shipping draft. State mirrors what
// the original client held in browser storage; every mutation saves
// synchronously, last write wins.
type CartService struct {
	Store *store.SessionStore
}

func NewCartService(s *store.SessionStore) *CartService {
	return &CartService{Store: s}
}

// Get returns the cart with its running total.
func (s *CartService) Get(sessionID string) (*model.CartResponse, error) {
	st, err := s.Store.Load(sessionID)
	if err != nil {
		return nil, err
	}
	return &model.CartResponse{
		Items: st.Cart,
		Total: ItemsPrice(st.Cart),
	}, nil
}

// Add puts an item in the cart. A line for the same product with the same
// variant values and customization accumulates quantity; anything else is a
// new line.
func (s *CartService) Add(sessionID string, item model.CartItem) error {
	if item.ProductID == "" {
		return errors.New("product id is required")
	}
	item.Quantity = item.EffectiveQuantity()

	return s.Store.Update(sessionID, func(st *store.State) error {
		for i := range st.Cart {
			if st.Cart[i].SameSelection(item) {
				st.Cart[i].Quantity = st.Cart[i].EffectiveQuantity() + item.Quantity
				return nil
			}
		}
		st.Cart = append(st.Cart, item)
		return nil
	})
}

// Replace is "buy now": the cart becomes exactly this one item.
func (s *CartService) Replace(sessionID string, item model.CartItem) error {
	if item.ProductID == "" {
		return errors.New("product id is required")
	}
	item.Quantity = item.EffectiveQuantity()

	return s.Store.Update(sessionID, func(st *store.State) error {
		st.Cart = []model.CartItem{item}
		return nil
	})
}

func (s *CartService) UpdateQuantity(sessionID string, index, qty int) error {
	if qty < 1 {
		return errors.New("quantity must be at least 1")
	}
	return s.Store.Update(sessionID, func(st *store.State) error {
		if index < 0 || index >= len(st.Cart) {
			return ErrItemNotFound
		}
		st.Cart[index].Quantity = qty
		return nil
	})
}

// Remove deletes the line at the given index, matching the cart page's
// delete-by-position behaviour.
func (s *CartService) Remove(sessionID string, index int) error {
	return s.Store.Update(sessionID, func(st *store.State) error {
		if index < 0 || index >= len(st.Cart) {
			return ErrItemNotFound
		}
		st.Cart = append(st.Cart[:index], st.Cart[index+1:]...)
		return nil
	})
}

func (s *CartService) Clear(sessionID string) error {
	return s.Store.Update(sessionID, func(st *store.State) error {
		st.Cart = []model.CartItem{}
		return nil
	})
}

// SaveShipping stores the shipping form draft so a reload does not lose it.
func (s *CartService) SaveShipping(sessionID string, info model.ShippingInfo) error {
	return s.Store.Update(sessionID, func(st *store.State) error {
		st.Shipping = &info
		return nil
	})
}

func (s *CartService) Shipping(sessionID string) (*model.ShippingInfo, error) {
	st, err := s.Store.Load(sessionID)
	if err != nil {
		return nil, err
	}
	return st.Shipping, nil
}
