// Package auth implements the mock session layer. Any email and a
// non-empty password sign in; the session is a local convenience, not a
// security boundary.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sadopc/clientflow/internal/storage"
)

var (
	ErrInvalidEmail = errors.New("auth: email must contain @")
	ErrNoPassword   = errors.New("auth: password must not be empty")
)

// Session records a signed-in user between runs.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Manager persists the active session alongside the rest of the
// application state.
type Manager struct {
	store *storage.Store
}

func NewManager(s *storage.Store) *Manager {
	return &Manager{store: s}
}

// Login validates the credentials shape, mints a fresh session, and
// persists it. Any well-formed email with any non-empty password passes.
func (m *Manager) Login(email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return Session{}, ErrInvalidEmail
	}
	if password == "" {
		return Session{}, ErrNoPassword
	}
	s := Session{
		Token:     uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	m.store.SetJSON(storage.KeySession, s)
	return s, nil
}

// Current returns the persisted session, if any.
func (m *Manager) Current() (Session, bool) {
	var s Session
	if !m.store.GetJSON(storage.KeySession, &s) || s.Token == "" {
		return Session{}, false
	}
	return s, true
}

// Logout discards the persisted session. Logging out while already
// logged out is a no-op.
func (m *Manager) Logout() {
	m.store.Remove(storage.KeySession)
}
