package store

import (
	"time"

	"github.com/sadopc/clientflow/internal/model"
)

func (s *Store) LoadActionItems() {
	s.mu.Lock()
	s.loading.ActionItems = true
	s.mu.Unlock()

	items := s.repos.ActionItems.GetAll()

	s.mu.Lock()
	s.actionItems = items
	s.loading.ActionItems = false
	s.mu.Unlock()
}

func (s *Store) ActionItems() []model.ActionItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.ActionItem, len(s.actionItems))
	copy(out, s.actionItems)
	return out
}

func (s *Store) AddActionItem(item model.ActionItem) bool {
	s.mu.Lock()
	s.actionItems = append(s.actionItems, item)
	items := make([]model.ActionItem, len(s.actionItems))
	copy(items, s.actionItems)
	s.mu.Unlock()

	return s.repos.ActionItems.Save(items)
}

func (s *Store) UpdateActionItem(id string, p model.ActionItemPatch) bool {
	s.mu.Lock()
	found := false
	for i := range s.actionItems {
		if s.actionItems[i].ID == id {
			p.Apply(&s.actionItems[i])
			found = true
			break
		}
	}
	items := make([]model.ActionItem, len(s.actionItems))
	copy(items, s.actionItems)
	s.mu.Unlock()

	if !found {
		return false
	}
	return s.repos.ActionItems.Save(items)
}

func (s *Store) DeleteActionItem(id string) bool {
	s.mu.Lock()
	remaining := s.actionItems[:0]
	for _, item := range s.actionItems {
		if item.ID != id {
			remaining = append(remaining, item)
		}
	}
	s.actionItems = remaining
	items := make([]model.ActionItem, len(s.actionItems))
	copy(items, s.actionItems)
	s.mu.Unlock()

	return s.repos.ActionItems.Save(items)
}

// CompleteActionItem marks the item completed and stamps CompletedAt.
// CompletedAt is never cleared by later status changes.
func (s *Store) CompleteActionItem(id string) bool {
	status := model.ActionCompleted
	now := time.Now().UTC()
	return s.UpdateActionItem(id, model.ActionItemPatch{
		Status:      &status,
		CompletedAt: &now,
	})
}
