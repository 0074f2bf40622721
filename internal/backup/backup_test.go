package backup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/clientflow/internal/model"
	"github.com/sadopc/clientflow/internal/storage"
)

func newStore(t *testing.T) *storage.Store {
	t.Helper()
	b, err := storage.NewMemorySQLite()
	require.NoError(t, err)
	st := storage.New(b)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestRunAndRestore(t *testing.T) {
	st := newStore(t)
	clients := []model.Client{{ID: "c1", Name: "Acme", Email: "a@b.c", HealthScore: model.HealthScore{Score: 80, Trend: model.TrendStable, Status: model.HealthGood}}}
	require.True(t, st.SetJSON(storage.KeyClients, clients))

	m := NewManager(st, t.TempDir(), 5)
	path, err := m.Run()
	require.NoError(t, err)
	assert.FileExists(t, path)

	// Wipe, then put everything back.
	st.Clear()
	var gone []model.Client
	assert.False(t, st.GetJSON(storage.KeyClients, &gone))

	require.NoError(t, m.Restore(path))
	var restored []model.Client
	require.True(t, st.GetJSON(storage.KeyClients, &restored))
	require.Len(t, restored, 1)
	assert.Equal(t, "Acme", restored[0].Name)
}

func TestPruneKeepsNewest(t *testing.T) {
	st := newStore(t)
	m := NewManager(st, t.TempDir(), 2)

	var last string
	for i := 0; i < 3; i++ {
		p, err := m.Run()
		require.NoError(t, err)
		last = p
	}

	paths, err := m.List()
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, last, paths[len(paths)-1])
}

func TestListEmptyDir(t *testing.T) {
	m := NewManager(newStore(t), t.TempDir()+"/missing", 3)
	paths, err := m.List()
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestScheduleRejectsBadSpec(t *testing.T) {
	m := NewManager(newStore(t), t.TempDir(), 3)
	_, err := m.Schedule("not a cron spec")
	assert.Error(t, err)
}

func TestScheduleStartsAndStops(t *testing.T) {
	m := NewManager(newStore(t), t.TempDir(), 3)
	stop, err := m.Schedule("@hourly")
	require.NoError(t, err)
	stop()
}

func TestRestoreMissingFile(t *testing.T) {
	m := NewManager(newStore(t), t.TempDir(), 3)
	assert.Error(t, m.Restore("/does/not/exist.json"))
}
