package backend

import (
	"context"

	"github.com/RanganathP76/ecommerce-frontend/internal/model"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*model.LoginResult, error) {
	var out model.LoginResult
	err := c.postJSON(ctx, "", "/auth/login", loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*model.LoginResult, error) {
	var out model.LoginResult
	err := c.postJSON(ctx, "", "/users/register", registerRequest{Name: name, Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
