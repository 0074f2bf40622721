package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/clientflow/internal/storage"
)

func newManager(t *testing.T) *Manager {
	t.Helper()
	b, err := storage.NewMemorySQLite()
	require.NoError(t, err)
	st := storage.New(b)
	t.Cleanup(func() { st.Close() })
	return NewManager(st)
}

func TestLogin(t *testing.T) {
	m := newManager(t)

	s, err := m.Login("demo@clientflow.app", "password")
	require.NoError(t, err)
	assert.Equal(t, "demo@clientflow.app", s.Email)
	assert.NotEmpty(t, s.Token)
	assert.False(t, s.CreatedAt.IsZero())

	got, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, s.Token, got.Token)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	m := newManager(t)

	_, err := m.Login("not-an-email", "password")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = m.Login("demo@clientflow.app", "")
	assert.ErrorIs(t, err, ErrNoPassword)

	_, ok := m.Current()
	assert.False(t, ok)
}

func TestLoginTrimsEmail(t *testing.T) {
	m := newManager(t)
	s, err := m.Login("  demo@clientflow.app  ", "x")
	require.NoError(t, err)
	assert.Equal(t, "demo@clientflow.app", s.Email)
}

func TestLogout(t *testing.T) {
	m := newManager(t)
	_, err := m.Login("demo@clientflow.app", "password")
	require.NoError(t, err)

	m.Logout()
	_, ok := m.Current()
	assert.False(t, ok)

	// Idempotent.
	m.Logout()
}

func TestLoginReplacesSession(t *testing.T) {
	m := newManager(t)
	first, err := m.Login("a@example.com", "x")
	require.NoError(t, err)
	second, err := m.Login("b@example.com", "x")
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
	got, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "b@example.com", got.Email)
}
