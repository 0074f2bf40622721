package store

import "github.com/sadopc/clientflow/internal/model"

// UI selection state is persisted as a convenience cache on every change so
// the next session can restore it. Losing it is harmless.

func (s *Store) persistUIState() {
	s.repos.UIState.Save(model.UIState{
		SidebarOpen:          s.sidebarOpen,
		ActiveSection:        s.activeSection,
		SelectedConversation: s.selectedConversation,
		SelectedClient:       s.selectedClient,
	})
}

func (s *Store) SetSidebarOpen(open bool) {
	s.mu.Lock()
	s.sidebarOpen = open
	s.persistUIState()
	s.mu.Unlock()
}

func (s *Store) SidebarOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sidebarOpen
}

func (s *Store) SetActiveSection(section string) {
	s.mu.Lock()
	s.activeSection = section
	s.persistUIState()
	s.mu.Unlock()
}

func (s *Store) ActiveSection() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeSection
}

func (s *Store) SelectConversation(id string) {
	s.mu.Lock()
	s.selectedConversation = id
	s.persistUIState()
	s.mu.Unlock()
}

func (s *Store) SelectedConversation() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedConversation
}

func (s *Store) SelectClient(id string) {
	s.mu.Lock()
	s.selectedClient = id
	s.persistUIState()
	s.mu.Unlock()
}

func (s *Store) SelectedClient() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedClient
}

func (s *Store) SetConversationFilters(f model.ConversationFilters) {
	s.mu.Lock()
	s.conversationFilters = f
	s.mu.Unlock()
}

func (s *Store) ConversationFilters() model.ConversationFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conversationFilters
}

func (s *Store) SetClientFilters(f model.ClientFilters) {
	s.mu.Lock()
	s.clientFilters = f
	s.mu.Unlock()
}

func (s *Store) ClientFilters() model.ClientFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clientFilters
}

func (s *Store) ClearFilters() {
	s.mu.Lock()
	s.conversationFilters = model.ConversationFilters{}
	s.clientFilters = model.ClientFilters{}
	s.mu.Unlock()
}
