package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/RanganathP76/ecommerce-frontend/internal/model"
	"github.com/RanganathP76/ecommerce-frontend/internal/store"
)

const MinPasswordLen = 8

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// AuthBackend proxies credentials to the account backend; the storefront
// never stores a password or hash.
type AuthBackend interface {
	Login(ctx context.Context, email, password string) (*model.LoginResult, error)
	Register(ctx context.Context, name, email, password string) (*model.LoginResult, error)
}

type AuthService struct {
	Backend AuthBackend
	Store   *store.SessionStore
}

func NewAuthService(b AuthBackend, st *store.SessionStore) *AuthService {
	return &AuthService{Backend: b, Store: st}
}

func validateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("invalid email format")
	}
	return nil
}

func validatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return fmt.Errorf("password too short: must be at least %d characters", MinPasswordLen)
	}
	return nil
}

// Login authenticates against the backend and mirrors the user snapshot into
// the session, the way the client kept "user" in local storage.
func (s *AuthService) Login(ctx context.Context, sessionID, email, password string) (*model.LoginResult, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	res, err := s.Backend.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.rememberUser(sessionID, res.User); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *AuthService) Register(ctx context.Context, sessionID, name, email, password string) (*model.LoginResult, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	res, err := s.Backend.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.rememberUser(sessionID, res.User); err != nil {
		return nil, err
	}
	return res, nil
}

// Logout forgets the mirrored user; the caller drops its own token.
func (s *AuthService) Logout(sessionID string) error {
	return s.Store.Update(sessionID, func(st *store.State) error {
		st.User = nil
		return nil
	})
}

func (s *AuthService) CurrentUser(sessionID string) (*model.User, error) {
	st, err := s.Store.Load(sessionID)
	if err != nil {
		return nil, err
	}
	return st.User, nil
}

func (s *AuthService) rememberUser(sessionID string, u model.User) error {
	return s.Store.Update(sessionID, func(st *store.State) error {
		st.User = &u
		if st.GuestEmail == "" {
			st.GuestEmail = u.Email
		}
		return nil
	})
}
