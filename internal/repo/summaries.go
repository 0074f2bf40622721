package repo

import (
	"github.com/sadopc/clientflow/internal/model"
	"github.com/sadopc/clientflow/internal/storage"
)

type Summaries struct {
	c collection[model.EmailSummary]
}

func NewSummaries(s *storage.Store) *Summaries {
	return &Summaries{c: collection[model.EmailSummary]{
		store: s,
		key:   storage.KeySummaries,
		id:    func(s model.EmailSummary) string { return s.ID },
	}}
}

func (r *Summaries) GetAll() []model.EmailSummary     { return r.c.GetAll() }
func (r *Summaries) Save(v []model.EmailSummary) bool { return r.c.Save(v) }
func (r *Summaries) Add(v model.EmailSummary) bool    { return r.c.Add(v) }
func (r *Summaries) Delete(id string) bool            { return r.c.Delete(id) }

// GetByConversation returns the first summary linked to a conversation.
func (r *Summaries) GetByConversation(conversationID string) (model.EmailSummary, bool) {
	for _, s := range r.c.GetAll() {
		if s.ConversationID == conversationID {
			return s, true
		}
	}
	return model.EmailSummary{}, false
}
