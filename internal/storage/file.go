package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// FileBackend stores one file per key under a directory. Writes go through
// an atomic rename so a crash never leaves a half-written value behind.
type FileBackend struct {
	dir string
}

func NewFile(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b *FileBackend) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(b.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %q: %w", key, err)
	}
	return string(data), true, nil
}

func (b *FileBackend) Set(key, value string) error {
	if err := atomic.WriteFile(b.path(key), bytes.NewReader([]byte(value))); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

func (b *FileBackend) Delete(key string) error {
	err := os.Remove(b.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

func (b *FileBackend) Close() error {
	return nil
}
