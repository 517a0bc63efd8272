package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RanganathP76/ecommerce-frontend/internal/model"
	"github.com/RanganathP76/ecommerce-frontend/internal/store"
)

type mockAuthBackend struct {
	loginCalls    int
	registerCalls int
	err           error
}

func (m *mockAuthBackend) Login(ctx context.Context, email, password string) (*model.LoginResult, error) {
	m.loginCalls++
	if m.err != nil {
		return nil, m.err
	}
	return &model.LoginResult{
		Token: "jwt-token",
		User:  model.User{ID: "u1", Name: "Asha", Email: email},
	}, nil
}

func (m *mockAuthBackend) Register(ctx context.Context, name, email, password string) (*model.LoginResult, error) {
	m.registerCalls++
	if m.err != nil {
		return nil, m.err
	}
	return &model.LoginResult{
		Token: "jwt-token",
		User:  model.User{ID: "u2", Name: name, Email: email},
	}, nil
}

func newAuthFixture() (*AuthService, *mockAuthBackend, *store.SessionStore, string) {
	backend := &mockAuthBackend{}
	sessions := store.New(store.NewMemoryAdapter())
	return NewAuthService(backend, sessions), backend, sessions, "sess-auth"
}

func TestLoginMirrorsUserIntoSession(t *testing.T) {
	svc, backend, sessions, sess := newAuthFixture()

	res, err := svc.Login(context.Background(), sess, "asha@example.com", "whatever")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", res.Token)
	assert.Equal(t, 1, backend.loginCalls)

	st, err := sessions.Load(sess)
	require.NoError(t, err)
	require.NotNil(t, st.User)
	assert.Equal(t, "asha@example.com", st.User.Email)
	assert.Equal(t, "asha@example.com", st.GuestEmail, "guest email backfills from login")
}

func TestLoginRejectsBadEmailBeforeBackend(t *testing.T) {
	svc, backend, _, sess := newAuthFixture()

	_, err := svc.Login(context.Background(), sess, "not-an-email", "pw")
	assert.Error(t, err)
	assert.Zero(t, backend.loginCalls)
}

func TestLoginKeepsExistingGuestEmail(t *testing.T) {
	svc, _, sessions, sess := newAuthFixture()
	require.NoError(t, sessions.Update(sess, func(st *store.State) error {
		st.GuestEmail = "original@example.com"
		return nil
	}))

	_, err := svc.Login(context.Background(), sess, "asha@example.com", "pw")
	require.NoError(t, err)

	st, err := sessions.Load(sess)
	require.NoError(t, err)
	assert.Equal(t, "original@example.com", st.GuestEmail)
}

func TestRegisterValidatesPassword(t *testing.T) {
	svc, backend, _, sess := newAuthFixture()

	_, err := svc.Register(context.Background(), sess, "Asha", "asha@example.com", "short")
	assert.Error(t, err)
	assert.Zero(t, backend.registerCalls)

	_, err = svc.Register(context.Background(), sess, "Asha", "asha@example.com", "longenough")
	assert.NoError(t, err)
	assert.Equal(t, 1, backend.registerCalls)
}

func TestLogoutForgetsUser(t *testing.T) {
	svc, _, sessions, sess := newAuthFixture()
	_, err := svc.Login(context.Background(), sess, "asha@example.com", "pw")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(sess))

	u, err := svc.CurrentUser(sess)
	require.NoError(t, err)
	assert.Nil(t, u)

	st, err := sessions.Load(sess)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", st.GuestEmail, "guest email survives logout")
}
