package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/clientflow/internal/model"
)

// Snapshot is the full-workspace export: every collection plus the
// settings singleton, suitable for moving data between machines.
type Snapshot struct {
	ExportedAt    time.Time                `json:"exportedAt"`
	SchemaVersion int                      `json:"schemaVersion"`
	Conversations []model.Conversation     `json:"conversations"`
	Clients       []model.Client           `json:"clients"`
	ActionItems   []model.ActionItem       `json:"actionItems"`
	Templates     []model.ResponseTemplate `json:"templates"`
	Summaries     []model.EmailSummary     `json:"summaries"`
	Settings      model.UserSettings       `json:"settings"`
}

// ToJSON writes the snapshot as indented JSON at path.
func ToJSON(s Snapshot, path string) error {
	if s.ExportedAt.IsZero() {
		s.ExportedAt = time.Now().UTC()
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}

// FromJSON reads a snapshot previously written by ToJSON.
func FromJSON(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read json file: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("parse json file: %w", err)
	}
	return s, nil
}
