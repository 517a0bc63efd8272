package backend

import (
	"context"

	"github.com/RanganathP76/ecommerce-frontend/internal/model"
)

// TrackOrder is public: anyone holding an order id can view it. The
// confirmation page reads through here too.
func (c *Client) TrackOrder(ctx context.Context, orderID string) (*model.Order, error) {
	var out model.Order
	if err := c.get(ctx, "", "/orders/track/"+orderID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyOrders(ctx context.Context, token string) ([]model.Order, error) {
	var out []model.Order
	if err := c.get(ctx, token, "/orders/my", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GuestOrders(ctx context.Context, email string) ([]model.Order, error) {
	var out []model.Order
	if err := c.get(ctx, "", "/orders/guest?email="+queryEscape(email), &out); err != nil {
		return nil, err
	}
	return out, nil
}
