package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const (
	lockRetry    = 100 * time.Millisecond
	lockMaxRetry = 10
)

// AcquireLock takes an exclusive lock file in the data directory. The store
// assumes a single active process; a second instance fails fast here
// instead of silently racing the first one's writes.
func AcquireLock(dataDir string) (*flock.Flock, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	lockPath := filepath.Join(dataDir, "clientflow.lock")
	lock := flock.New(lockPath)

	for i := 0; i < lockMaxRetry; i++ {
		locked, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("acquire lock: %w", err)
		}
		if locked {
			slog.Debug("data directory locked", "path", lockPath)
			return lock, nil
		}
		time.Sleep(lockRetry)
	}

	return nil, fmt.Errorf("data directory %s is in use by another clientflow instance", dataDir)
}

// ReleaseLock drops the lock, logging rather than failing on error since it
// runs during shutdown.
func ReleaseLock(lock *flock.Flock) {
	if lock == nil {
		return
	}
	if err := lock.Unlock(); err != nil {
		slog.Warn("release lock", "error", err)
	}
}
