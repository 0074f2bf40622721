package repo

import (
	"log/slog"

	"github.com/sadopc/clientflow/internal/model"
	"github.com/sadopc/clientflow/internal/storage"
)

// Settings is the singleton user-settings repository.
type Settings struct {
	store *storage.Store
}

func NewSettings(s *storage.Store) *Settings {
	return &Settings{store: s}
}

// Get returns the persisted settings, or defaults when absent or invalid.
func (r *Settings) Get() model.UserSettings {
	var s model.UserSettings
	if !r.store.GetJSON(storage.KeySettings, &s) {
		return model.DefaultSettings()
	}
	if err := s.Validate(); err != nil {
		slog.Warn("dropping invalid settings", "error", err)
		return model.DefaultSettings()
	}
	return s
}

func (r *Settings) Save(s model.UserSettings) bool {
	return r.store.SetJSON(storage.KeySettings, s)
}

// UIState is the singleton UI-state cache repository. It skips validation:
// the cached state is a convenience, never authoritative.
type UIState struct {
	store *storage.Store
}

func NewUIState(s *storage.Store) *UIState {
	return &UIState{store: s}
}

func (r *UIState) Get() (model.UIState, bool) {
	var ui model.UIState
	if !r.store.GetJSON(storage.KeyUIState, &ui) {
		return model.UIState{}, false
	}
	return ui, true
}

func (r *UIState) Save(ui model.UIState) bool {
	return r.store.SetJSON(storage.KeyUIState, ui)
}
