package store

import (
	"errors"
	"sync"

	"github.com/RanganathP76/ecommerce-frontend/internal/model"
)

// State is everything the original client kept in browser local storage,
// scoped to one storefront session: the cart, the shipping draft, the guest
// email and the logged-in user snapshot.
type State struct {
	Cart       []model.CartItem    `json:"cart"`
	Shipping   *model.ShippingInfo `json:"shipping,omitempty"`
	GuestEmail string              `json:"guestEmail,omitempty"`
	User       *model.User         `json:"user,omitempty"`
}

// Adapter persists session state. Writes are synchronous and last-write-wins;
// no transaction guarantees are provided or required.
type Adapter interface {
	Load(sessionID string) (*State, error)
	Save(sessionID string, st *State) error
	Delete(sessionID string) error
}

// SessionStore serializes load-modify-save cycles per process so two handlers
// for the same session cannot interleave a mutation.
type SessionStore struct {
	mu      sync.Mutex
	adapter Adapter
}

func New(adapter Adapter) *SessionStore {
	return &SessionStore{adapter: adapter}
}

// Load returns the session state, empty (never nil) when the session is new.
func (s *SessionStore) Load(sessionID string) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(sessionID)
}

// Update applies fn to the current state and saves the result.
func (s *SessionStore) Update(sessionID string, fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.load(sessionID)
	if err != nil {
		return err
	}
	if err := fn(st); err != nil {
		return err
	}
	return s.adapter.Save(sessionID, st)
}

func (s *SessionStore) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adapter.Delete(sessionID)
}

func (s *SessionStore) load(sessionID string) (*State, error) {
	st, err := s.adapter.Load(sessionID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		st = &State{}
	}
	if st.Cart == nil {
		st.Cart = []model.CartItem{}
	}
	return st, nil
}

var errNoSession = errors.New("store: empty session id")

// MemoryAdapter is the in-process adapter used in tests and when no store
// path is configured.
type MemoryAdapter struct {
	mu       sync.RWMutex
	sessions map[string]*State
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{sessions: make(map[string]*State)}
}

func (m *MemoryAdapter) Load(sessionID string) (*State, error) {
	if sessionID == "" {
		return nil, errNoSession
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	cp := *st
	cp.Cart = append([]model.CartItem(nil), st.Cart...)
	return &cp, nil
}

func (m *MemoryAdapter) Save(sessionID string, st *State) error {
	if sessionID == "" {
		return errNoSession
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *st
	cp.Cart = append([]model.CartItem(nil), st.Cart...)
	m.sessions[sessionID] = &cp
	return nil
}

func (m *MemoryAdapter) Delete(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}
