package cli

import (
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"

	"github.com/sadopc/clientflow/internal/config"
	"github.com/sadopc/clientflow/internal/repo"
	"github.com/sadopc/clientflow/internal/storage"
	"github.com/sadopc/clientflow/internal/store"
)

// env bundles everything a command needs over an open data directory.
type env struct {
	Storage *storage.Store
	Repos   *repo.Repos
	App     *store.Store

	lock *flock.Flock
}

// openStore locks the data directory and opens the configured backend.
// The lock enforces the single-writer assumption the persistence layer
// is built on.
func openStore(cfg *config.Config) (*env, error) {
	lock, err := storage.AcquireLock(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	var backend storage.Backend
	switch cfg.Backend {
	case config.BackendFile:
		backend, err = storage.NewFile(cfg.FileStoreDir())
	default:
		backend, err = storage.NewSQLite(cfg.DatabasePath())
	}
	if err != nil {
		storage.ReleaseLock(lock)
		return nil, fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}

	st := storage.New(backend)
	repos := repo.New(st)
	return &env{
		Storage: st,
		Repos:   repos,
		App:     store.New(repos, st),
		lock:    lock,
	}, nil
}

func (e *env) Close() {
	if err := e.Storage.Close(); err != nil {
		slog.Warn("close storage", "error", err)
	}
	storage.ReleaseLock(e.lock)
}
