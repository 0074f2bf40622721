package store

import "github.com/sadopc/clientflow/internal/model"

func (s *Store) LoadSummaries() {
	summaries := s.repos.Summaries.GetAll()
	s.mu.Lock()
	s.summaries = summaries
	s.mu.Unlock()
}

func (s *Store) Summaries() []model.EmailSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.EmailSummary, len(s.summaries))
	copy(out, s.summaries)
	return out
}

func (s *Store) AddSummary(sum model.EmailSummary) bool {
	s.mu.Lock()
	s.summaries = append(s.summaries, sum)
	summaries := make([]model.EmailSummary, len(s.summaries))
	copy(summaries, s.summaries)
	s.mu.Unlock()

	return s.repos.Summaries.Save(summaries)
}

func (s *Store) SummaryByConversation(conversationID string) (model.EmailSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sum := range s.summaries {
		if sum.ConversationID == conversationID {
			return sum, true
		}
	}
	return model.EmailSummary{}, false
}
