package services

import (
	"context"
	"errors"

	"github.com/RanganathP76/ecommerce-frontend/internal/model"
	"github.com/RanganathP76/ecommerce-frontend/internal/store"
)

// OrderBackend is the read side of order retrieval.
type OrderBackend interface {
	TrackOrder(ctx context.Context, orderID string) (*model.Order, error)
	MyOrders(ctx context.Context, token string) ([]model.Order, error)
	GuestOrders(ctx context.Context, email string) ([]model.Order, error)
}

type OrderService struct {
	Backend OrderBackend
	Store   *store.SessionStore
}

func NewOrderService(b OrderBackend, st *store.SessionStore) *OrderService {
	return &OrderService{Backend: b, Store: st}
}

// Track is the public lookup; it also backs the order-confirmation view.
func (s *OrderService) Track(ctx context.Context, orderID string) (*model.Order, error) {
	if orderID == "" {
		return nil, errors.New("order id is required")
	}
	return s.Backend.TrackOrder(ctx, orderID)
}

func (s *OrderService) My(ctx context.Context, token string) ([]model.Order, error) {
	return s.Backend.MyOrders(ctx, token)
}

// Guest lists orders for the given email, falling back to the email
// remembered in the session from a previous guest checkout.
func (s *OrderService) Guest(ctx context.Context, sessionID, email string) ([]model.Order, error) {
	if email == "" {
		st, err := s.Store.Load(sessionID)
		if err != nil {
			return nil, err
		}
		email = st.GuestEmail
	}
	if email == "" {
		return nil, errors.New("email is required")
	}
	return s.Backend.GuestOrders(ctx, email)
}

// RememberGuestEmail keeps the guest email so later visits can list orders
// without retyping it.
func (s *OrderService) RememberGuestEmail(sessionID, email string) error {
	return s.Store.Update(sessionID, func(st *store.State) error {
		st.GuestEmail = email
		return nil
	})
}
