package storage

import (
	"encoding/json"
	"log/slog"
	"strconv"
)

// Logical keys, one JSON value per key.
const (
	KeyConversations = "clientflow_conversations"
	KeyClients       = "clientflow_clients"
	KeySummaries     = "clientflow_summaries"
	KeyActionItems   = "clientflow_action_items"
	KeyTemplates     = "clientflow_response_templates"
	KeySettings      = "clientflow_settings"
	KeyUIState       = "clientflow_ui_state"
	KeySession       = "clientflow_session"
	KeyVersion       = "clientflow_version"
)

// SchemaVersion is a placeholder counter for future migrations.
const SchemaVersion = 1

// KnownKeys returns every key this application owns. Clear only touches
// these, never the whole backend.
func KnownKeys() []string {
	return []string{
		KeyConversations,
		KeyClients,
		KeySummaries,
		KeyActionItems,
		KeyTemplates,
		KeySettings,
		KeyUIState,
		KeySession,
		KeyVersion,
	}
}

// Backend is a flat key-value string store.
type Backend interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Store is the persistence adapter: typed JSON records over a Backend.
// Every operation fails soft — errors are logged and reported as false or
// absence, so callers cannot distinguish "failed to read" from "never
// written". That matches the contract the rest of the system is built on.
type Store struct {
	backend Backend
}

func New(backend Backend) *Store {
	s := &Store{backend: backend}
	s.ensureVersion()
	return s
}

func (s *Store) ensureVersion() {
	if _, ok, err := s.backend.Get(KeyVersion); err == nil && !ok {
		if err := s.backend.Set(KeyVersion, strconv.Itoa(SchemaVersion)); err != nil {
			slog.Warn("storage: write schema version", "error", err)
		}
	}
}

// Version reads the persisted schema version counter, defaulting to the
// current version when absent or unreadable.
func (s *Store) Version() int {
	raw, ok, err := s.backend.Get(KeyVersion)
	if err != nil || !ok {
		return SchemaVersion
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return SchemaVersion
	}
	return v
}

// GetJSON decodes the value at key into v. Returns false when the key is
// absent or the value cannot be decoded.
func (s *Store) GetJSON(key string, v any) bool {
	raw, ok, err := s.backend.Get(key)
	if err != nil {
		slog.Error("storage: read", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	data := normalizeDates([]byte(raw))
	if err := json.Unmarshal(data, v); err != nil {
		slog.Error("storage: decode", "key", key, "error", err)
		return false
	}
	return true
}

// SetJSON encodes v and writes it at key. Date-valued fields are emitted as
// RFC3339 strings, the single canonical encoding for this store.
func (s *Store) SetJSON(key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("storage: encode", "key", key, "error", err)
		return false
	}
	if err := s.backend.Set(key, string(data)); err != nil {
		slog.Error("storage: write", "key", key, "error", err)
		return false
	}
	return true
}

func (s *Store) Remove(key string) bool {
	if err := s.backend.Delete(key); err != nil {
		slog.Error("storage: remove", "key", key, "error", err)
		return false
	}
	return true
}

// Clear removes every known application key.
func (s *Store) Clear() bool {
	ok := true
	for _, key := range KnownKeys() {
		if err := s.backend.Delete(key); err != nil {
			slog.Error("storage: clear", "key", key, "error", err)
			ok = false
		}
	}
	return ok
}

// Dump reads the raw persisted value of every known key that is present.
// Used by backups, which copy values verbatim without decoding them.
func (s *Store) Dump() map[string]string {
	out := make(map[string]string)
	for _, key := range KnownKeys() {
		raw, ok, err := s.backend.Get(key)
		if err != nil {
			slog.Error("storage: dump", "key", key, "error", err)
			continue
		}
		if ok {
			out[key] = raw
		}
	}
	return out
}

// RestoreDump writes previously dumped raw values back, skipping keys
// this application does not own.
func (s *Store) RestoreDump(values map[string]string) bool {
	known := make(map[string]bool)
	for _, key := range KnownKeys() {
		known[key] = true
	}
	ok := true
	for key, raw := range values {
		if !known[key] {
			slog.Warn("storage: restore skipping unknown key", "key", key)
			continue
		}
		if err := s.backend.Set(key, raw); err != nil {
			slog.Error("storage: restore", "key", key, "error", err)
			ok = false
		}
	}
	return ok
}

func (s *Store) Close() error {
	return s.backend.Close()
}
