package repo

import (
	"time"

	"github.com/sadopc/clientflow/internal/model"
	"github.com/sadopc/clientflow/internal/storage"
)

type Conversations struct {
	c collection[model.Conversation]
}

func NewConversations(s *storage.Store) *Conversations {
	return &Conversations{c: collection[model.Conversation]{
		store:    s,
		key:      storage.KeyConversations,
		id:       func(c model.Conversation) string { return c.ID },
		validate: model.Conversation.Validate,
		touch:    func(c *model.Conversation, now time.Time) { c.UpdatedAt = now },
	}}
}

func (r *Conversations) GetAll() []model.Conversation        { return r.c.GetAll() }
func (r *Conversations) Save(v []model.Conversation) bool    { return r.c.Save(v) }
func (r *Conversations) Add(v model.Conversation) bool       { return r.c.Add(v) }
func (r *Conversations) Delete(id string) bool               { return r.c.Delete(id) }
func (r *Conversations) GetByID(id string) (model.Conversation, bool) {
	return r.c.GetByID(id)
}

func (r *Conversations) Update(id string, p model.ConversationPatch) bool {
	return r.c.Update(id, func(c *model.Conversation) { p.Apply(c) })
}
