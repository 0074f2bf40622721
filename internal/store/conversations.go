package store

import (
	"time"

	"github.com/sadopc/clientflow/internal/model"
)

func (s *Store) LoadConversations() {
	s.mu.Lock()
	s.loading.Conversations = true
	s.mu.Unlock()

	conversations := s.repos.Conversations.GetAll()

	s.mu.Lock()
	s.conversations = conversations
	s.loading.Conversations = false
	s.mu.Unlock()
}

func (s *Store) Conversations() []model.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Conversation, len(s.conversations))
	copy(out, s.conversations)
	return out
}

func (s *Store) ConversationByID(id string) (model.Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.conversations {
		if c.ID == id {
			return c, true
		}
	}
	return model.Conversation{}, false
}

func (s *Store) AddConversation(c model.Conversation) bool {
	s.mu.Lock()
	s.conversations = append(s.conversations, c)
	conversations := make([]model.Conversation, len(s.conversations))
	copy(conversations, s.conversations)
	s.mu.Unlock()

	return s.repos.Conversations.Save(conversations)
}

func (s *Store) UpdateConversation(id string, p model.ConversationPatch) bool {
	s.mu.Lock()
	found := false
	now := time.Now().UTC()
	for i := range s.conversations {
		if s.conversations[i].ID == id {
			p.Apply(&s.conversations[i])
			s.conversations[i].UpdatedAt = now
			found = true
			break
		}
	}
	conversations := make([]model.Conversation, len(s.conversations))
	copy(conversations, s.conversations)
	s.mu.Unlock()

	if !found {
		return false
	}
	return s.repos.Conversations.Save(conversations)
}

func (s *Store) DeleteConversation(id string) bool {
	s.mu.Lock()
	remaining := s.conversations[:0]
	for _, c := range s.conversations {
		if c.ID != id {
			remaining = append(remaining, c)
		}
	}
	s.conversations = remaining
	if s.selectedConversation == id {
		s.selectedConversation = ""
	}
	conversations := make([]model.Conversation, len(s.conversations))
	copy(conversations, s.conversations)
	s.mu.Unlock()

	return s.repos.Conversations.Save(conversations)
}

func (s *Store) MarkConversationRead(id string) bool {
	unread := false
	return s.UpdateConversation(id, model.ConversationPatch{Unread: &unread})
}

func (s *Store) MarkConversationUnread(id string) bool {
	unread := true
	return s.UpdateConversation(id, model.ConversationPatch{Unread: &unread})
}
