// Package repo mediates between the application store and the persistence
// adapter: one repository per entity type, each operating on the full
// persisted collection.
package repo

import "github.com/sadopc/clientflow/internal/storage"

// Repos bundles every repository over a shared persistence adapter.
type Repos struct {
	Conversations *Conversations
	Clients       *Clients
	ActionItems   *ActionItems
	Summaries     *Summaries
	Templates     *Templates
	Settings      *Settings
	UIState       *UIState
}

func New(s *storage.Store) *Repos {
	return &Repos{
		Conversations: NewConversations(s),
		Clients:       NewClients(s),
		ActionItems:   NewActionItems(s),
		Summaries:     NewSummaries(s),
		Templates:     NewTemplates(s),
		Settings:      NewSettings(s),
		UIState:       NewUIState(s),
	}
}
