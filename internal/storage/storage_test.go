package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()
	b, err := NewMemorySQLite()
	require.NoError(t, err)
	s := New(b)
	t.Cleanup(func() { s.Close() })
	return s
}

func newFileStore(t *testing.T) *Store {
	t.Helper()
	b, err := NewFile(t.TempDir())
	require.NoError(t, err)
	s := New(b)
	t.Cleanup(func() { s.Close() })
	return s
}

// backends runs a subtest against each backend implementation.
func backends(t *testing.T, fn func(t *testing.T, s *Store)) {
	t.Helper()
	t.Run("sqlite", func(t *testing.T) { fn(t, newSQLiteStore(t)) })
	t.Run("file", func(t *testing.T) { fn(t, newFileStore(t)) })
}

type record struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Count     int        `json:"count"`
}

// ============================================================
// Adapter contract
// ============================================================

func TestGetAbsentKey(t *testing.T) {
	backends(t, func(t *testing.T, s *Store) {
		var out []record
		assert.False(t, s.GetJSON("clientflow_conversations", &out))
		assert.Empty(t, out)
	})
}

func TestSetGetRoundTrip(t *testing.T) {
	backends(t, func(t *testing.T, s *Store) {
		due := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
		in := []record{
			{ID: "a", CreatedAt: time.Now().UTC().Truncate(time.Millisecond), Count: 3},
			{ID: "b", CreatedAt: time.Now().UTC().Truncate(time.Millisecond), DueDate: &due},
		}
		require.True(t, s.SetJSON(KeyConversations, in))

		var out []record
		require.True(t, s.GetJSON(KeyConversations, &out))
		require.Len(t, out, 2)
		assert.True(t, in[0].CreatedAt.Equal(out[0].CreatedAt))
		require.NotNil(t, out[1].DueDate)
		assert.True(t, due.Equal(*out[1].DueDate))
	})
}

func TestOverwrite(t *testing.T) {
	backends(t, func(t *testing.T, s *Store) {
		require.True(t, s.SetJSON(KeyClients, []record{{ID: "a"}, {ID: "b"}}))
		require.True(t, s.SetJSON(KeyClients, []record{{ID: "c"}}))

		var out []record
		require.True(t, s.GetJSON(KeyClients, &out))
		require.Len(t, out, 1)
		assert.Equal(t, "c", out[0].ID)
	})
}

func TestRemove(t *testing.T) {
	backends(t, func(t *testing.T, s *Store) {
		require.True(t, s.SetJSON(KeyUIState, record{ID: "ui"}))
		require.True(t, s.Remove(KeyUIState))

		var out record
		assert.False(t, s.GetJSON(KeyUIState, &out))

		// Removing an absent key is still a success.
		assert.True(t, s.Remove(KeyUIState))
	})
}

func TestClearOnlyKnownKeys(t *testing.T) {
	backends(t, func(t *testing.T, s *Store) {
		require.True(t, s.SetJSON(KeyConversations, []record{{ID: "a"}}))
		require.True(t, s.SetJSON(KeySettings, record{ID: "s"}))
		require.NoError(t, s.backend.Set("unrelated_key", `"keep me"`))

		require.True(t, s.Clear())

		var out []record
		assert.False(t, s.GetJSON(KeyConversations, &out))
		raw, ok, err := s.backend.Get("unrelated_key")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `"keep me"`, raw)
	})
}

func TestCorruptValueFailsSoft(t *testing.T) {
	backends(t, func(t *testing.T, s *Store) {
		require.NoError(t, s.backend.Set(KeyClients, `{not json`))
		var out []record
		assert.False(t, s.GetJSON(KeyClients, &out))
	})
}

func TestSchemaVersion(t *testing.T) {
	backends(t, func(t *testing.T, s *Store) {
		assert.Equal(t, SchemaVersion, s.Version())
		raw, ok, err := s.backend.Get(KeyVersion)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "1", raw)
	})
}

func TestDump(t *testing.T) {
	backends(t, func(t *testing.T, s *Store) {
		require.True(t, s.SetJSON(KeyClients, []record{{ID: "a"}}))
		dump := s.Dump()
		assert.Contains(t, dump, KeyClients)
		assert.Contains(t, dump, KeyVersion)
		assert.NotContains(t, dump, KeyConversations)
	})
}

// ============================================================
// Date encoding
// ============================================================

func TestLegacyTaggedDatesDecoded(t *testing.T) {
	backends(t, func(t *testing.T, s *Store) {
		legacy := `[{"id":"a","createdAt":{"__type":"Date","value":"2025-06-15T10:00:00.000Z"},"count":2,` +
			`"dueDate":{"__type":"Date","value":"2025-07-01T00:00:00.000Z"}}]`
		require.NoError(t, s.backend.Set(KeyActionItems, legacy))

		var out []record
		require.True(t, s.GetJSON(KeyActionItems, &out))
		require.Len(t, out, 1)
		assert.Equal(t, time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC), out[0].CreatedAt.UTC())
		require.NotNil(t, out[0].DueDate)
		assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), out[0].DueDate.UTC())
		assert.Equal(t, 2, out[0].Count)
	})
}

func TestNormalizeDatesNoopOnCanonical(t *testing.T) {
	in := []byte(`[{"id":"a","createdAt":"2025-06-15T10:00:00Z"}]`)
	assert.Equal(t, in, normalizeDates(in))
}

func TestNormalizeDatesLeavesNonDateTags(t *testing.T) {
	in := []byte(`{"x":{"__type":"Blob","value":"zzz"}}`)
	out := normalizeDates(in)
	assert.JSONEq(t, string(in), string(out))
}

// ============================================================
// Backends
// ============================================================

func TestFileBackendPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFile(dir)
	require.NoError(t, err)
	s := New(b)
	require.True(t, s.SetJSON(KeyClients, []record{{ID: "a"}}))
	require.NoError(t, s.Close())

	b2, err := NewFile(dir)
	require.NoError(t, err)
	s2 := New(b2)
	defer s2.Close()

	var out []record
	require.True(t, s2.GetJSON(KeyClients, &out))
	require.Len(t, out, 1)
}

func TestSQLiteBackendPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "clientflow.db")
	b, err := NewSQLite(path)
	require.NoError(t, err)
	s := New(b)
	require.True(t, s.SetJSON(KeyClients, []record{{ID: "a"}}))
	require.NoError(t, s.Close())

	b2, err := NewSQLite(path)
	require.NoError(t, err)
	s2 := New(b2)
	defer s2.Close()

	var out []record
	require.True(t, s2.GetJSON(KeyClients, &out))
	require.Len(t, out, 1)
}

// ============================================================
// Locking
// ============================================================

func TestAcquireLock(t *testing.T) {
	dir := t.TempDir()
	lock, err := AcquireLock(dir)
	require.NoError(t, err)
	require.NotNil(t, lock)
	ReleaseLock(lock)

	// Re-acquirable after release.
	lock2, err := AcquireLock(dir)
	require.NoError(t, err)
	ReleaseLock(lock2)
}
