package repo

import (
	"time"

	"github.com/sadopc/clientflow/internal/model"
	"github.com/sadopc/clientflow/internal/storage"
)

type Templates struct {
	c collection[model.ResponseTemplate]
}

func NewTemplates(s *storage.Store) *Templates {
	// Templates skip schema validation on read, raw decoded data is trusted.
	return &Templates{c: collection[model.ResponseTemplate]{
		store: s,
		key:   storage.KeyTemplates,
		id:    func(t model.ResponseTemplate) string { return t.ID },
		touch: func(t *model.ResponseTemplate, now time.Time) { t.UpdatedAt = now },
	}}
}

func (r *Templates) GetAll() []model.ResponseTemplate     { return r.c.GetAll() }
func (r *Templates) Save(v []model.ResponseTemplate) bool { return r.c.Save(v) }
func (r *Templates) Add(v model.ResponseTemplate) bool    { return r.c.Add(v) }
func (r *Templates) Delete(id string) bool                { return r.c.Delete(id) }
func (r *Templates) GetByID(id string) (model.ResponseTemplate, bool) {
	return r.c.GetByID(id)
}

func (r *Templates) Update(id string, p model.TemplatePatch) bool {
	return r.c.Update(id, func(t *model.ResponseTemplate) { p.Apply(t) })
}
