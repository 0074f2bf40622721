// Package store holds the process-wide application state: every collection,
// loading flags, filters, and transient selection state. It owns the
// in-memory copies; repositories own durability. Actions mutate memory first
// and synchronously persist the full collection, derived views recompute
// from live state on every call.
package store

import (
	"sync"

	"github.com/sadopc/clientflow/internal/model"
	"github.com/sadopc/clientflow/internal/repo"
	"github.com/sadopc/clientflow/internal/seed"
	"github.com/sadopc/clientflow/internal/storage"
)

// LoadingFlags tracks per-collection load state. There is no error state:
// a failed load is indistinguishable from an empty result.
type LoadingFlags struct {
	Conversations bool
	Clients       bool
	ActionItems   bool
	Templates     bool
	Settings      bool
}

// Store is explicitly constructed and injected into the presentation layer.
// Mutations are serialized by the mutex; TUI commands run on goroutines but
// the semantics stay single-writer.
type Store struct {
	mu sync.RWMutex

	repos   *repo.Repos
	storage *storage.Store

	conversations []model.Conversation
	clients       []model.Client
	summaries     []model.EmailSummary
	actionItems   []model.ActionItem
	templates     []model.ResponseTemplate
	settings      model.UserSettings

	loading LoadingFlags

	sidebarOpen          bool
	activeSection        string
	selectedConversation string
	selectedClient       string

	conversationFilters model.ConversationFilters
	clientFilters       model.ClientFilters
}

func New(repos *repo.Repos, st *storage.Store) *Store {
	return &Store{
		repos:         repos,
		storage:       st,
		settings:      model.DefaultSettings(),
		activeSection: "dashboard",
	}
}

// Initialize loads every collection plus the cached UI state. Idempotent,
// safe to call repeatedly.
func (s *Store) Initialize() {
	s.LoadConversations()
	s.LoadClients()
	s.LoadSummaries()
	s.LoadActionItems()
	s.LoadTemplates()
	s.LoadSettings()

	if ui, ok := s.repos.UIState.Get(); ok {
		s.mu.Lock()
		s.sidebarOpen = ui.SidebarOpen
		if ui.ActiveSection != "" {
			s.activeSection = ui.ActiveSection
		}
		s.selectedConversation = ui.SelectedConversation
		s.selectedClient = ui.SelectedClient
		s.mu.Unlock()
	}
}

// Bootstrap seeds the fixture dataset when both the persisted conversation
// and client collections are empty, then (re)initializes from persisted
// state.
func (s *Store) Bootstrap() {
	if len(s.repos.Conversations.GetAll()) == 0 && len(s.repos.Clients.GetAll()) == 0 {
		data := seed.Mock()
		s.repos.Conversations.Save(data.Conversations)
		s.repos.Clients.Save(data.Clients)
		s.repos.ActionItems.Save(data.ActionItems)
		s.repos.Templates.Save(data.Templates)
	}
	s.Initialize()
}

// ClearAllData wipes persisted storage and resets in-memory state.
// Irreversible; confirmation is the caller's job.
func (s *Store) ClearAllData() {
	s.storage.Clear()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations = nil
	s.clients = nil
	s.summaries = nil
	s.actionItems = nil
	s.templates = nil
	s.settings = model.DefaultSettings()
	s.selectedConversation = ""
	s.selectedClient = ""
	s.conversationFilters = model.ConversationFilters{}
	s.clientFilters = model.ClientFilters{}
}

func (s *Store) Loading() LoadingFlags {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
