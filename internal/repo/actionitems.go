package repo

import (
	"github.com/sadopc/clientflow/internal/model"
	"github.com/sadopc/clientflow/internal/storage"
)

type ActionItems struct {
	c collection[model.ActionItem]
}

func NewActionItems(s *storage.Store) *ActionItems {
	// Action items carry no UpdatedAt, so no touch hook.
	return &ActionItems{c: collection[model.ActionItem]{
		store:    s,
		key:      storage.KeyActionItems,
		id:       func(a model.ActionItem) string { return a.ID },
		validate: model.ActionItem.Validate,
	}}
}

func (r *ActionItems) GetAll() []model.ActionItem     { return r.c.GetAll() }
func (r *ActionItems) Save(v []model.ActionItem) bool { return r.c.Save(v) }
func (r *ActionItems) Add(v model.ActionItem) bool    { return r.c.Add(v) }
func (r *ActionItems) Delete(id string) bool          { return r.c.Delete(id) }
func (r *ActionItems) GetByID(id string) (model.ActionItem, bool) {
	return r.c.GetByID(id)
}

func (r *ActionItems) Update(id string, p model.ActionItemPatch) bool {
	return r.c.Update(id, func(a *model.ActionItem) { p.Apply(a) })
}
