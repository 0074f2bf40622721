// Package backup writes timestamped snapshots of the raw persisted
// state and prunes old ones.
package backup

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	"github.com/robfig/cron/v3"

	"github.com/sadopc/clientflow/internal/storage"
)

const filePrefix = "clientflow-backup-"

// snapshot is the on-disk format: raw key-value pairs copied verbatim,
// so a backup survives schema details the current binary knows nothing
// about.
type snapshot struct {
	CreatedAt time.Time         `json:"createdAt"`
	Values    map[string]string `json:"values"`
}

type Manager struct {
	store *storage.Store
	dir   string
	keep  int
}

// NewManager writes snapshots to dir, retaining at most keep of them.
func NewManager(s *storage.Store, dir string, keep int) *Manager {
	if keep < 1 {
		keep = 1
	}
	return &Manager{store: s, dir: dir, keep: keep}
}

// Run takes one snapshot and prunes. Returns the path written.
func (m *Manager) Run() (string, error) {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	snap := snapshot{
		CreatedAt: time.Now().UTC(),
		Values:    m.store.Dump(),
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal backup: %w", err)
	}

	// Nanoseconds keep names unique for back-to-back runs and sorting
	// lexicographic keeps them chronological.
	name := filePrefix + snap.CreatedAt.Format("20060102-150405.000000000") + ".json"
	path := filepath.Join(m.dir, name)
	if err := atomic.WriteFile(path, strings.NewReader(string(data))); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}

	if err := m.prune(); err != nil {
		slog.Warn("backup: prune", "error", err)
	}
	return path, nil
}

// Restore loads a snapshot file and writes its values back into storage.
func (m *Manager) Restore(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parse backup: %w", err)
	}
	if !m.store.RestoreDump(snap.Values) {
		return fmt.Errorf("restore backup: some keys failed to write")
	}
	return nil
}

// List returns existing snapshot paths, oldest first.
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), filePrefix) && strings.HasSuffix(e.Name(), ".json") {
			paths = append(paths, filepath.Join(m.dir, e.Name()))
		}
	}
	// Timestamped names sort chronologically.
	sort.Strings(paths)
	return paths, nil
}

func (m *Manager) prune() error {
	paths, err := m.List()
	if err != nil {
		return err
	}
	for len(paths) > m.keep {
		if err := os.Remove(paths[0]); err != nil {
			return err
		}
		slog.Debug("backup: pruned", "path", paths[0])
		paths = paths[1:]
	}
	return nil
}

// Schedule runs snapshots on the given cron expression until the
// returned stop function is called.
func (m *Manager) Schedule(spec string) (stop func(), err error) {
	c := cron.New()
	_, err = c.AddFunc(spec, func() {
		path, err := m.Run()
		if err != nil {
			slog.Error("backup: scheduled run", "error", err)
			return
		}
		slog.Info("backup: written", "path", path)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid backup schedule %q: %w", spec, err)
	}
	c.Start()
	return func() { c.Stop() }, nil
}
