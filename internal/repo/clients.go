package repo

import (
	"time"

	"github.com/sadopc/clientflow/internal/model"
	"github.com/sadopc/clientflow/internal/storage"
)

type Clients struct {
	c collection[model.Client]
}

func NewClients(s *storage.Store) *Clients {
	return &Clients{c: collection[model.Client]{
		store:    s,
		key:      storage.KeyClients,
		id:       func(c model.Client) string { return c.ID },
		validate: model.Client.Validate,
		touch:    func(c *model.Client, now time.Time) { c.UpdatedAt = now },
	}}
}

func (r *Clients) GetAll() []model.Client     { return r.c.GetAll() }
func (r *Clients) Save(v []model.Client) bool { return r.c.Save(v) }
func (r *Clients) Add(v model.Client) bool    { return r.c.Add(v) }
func (r *Clients) Delete(id string) bool      { return r.c.Delete(id) }
func (r *Clients) GetByID(id string) (model.Client, bool) {
	return r.c.GetByID(id)
}

func (r *Clients) Update(id string, p model.ClientPatch) bool {
	return r.c.Update(id, func(c *model.Client) { p.Apply(c) })
}

// UpdateHealth merges a patch into the health sub-record only.
func (r *Clients) UpdateHealth(id string, p model.HealthPatch) bool {
	return r.c.Update(id, func(c *model.Client) { p.Apply(&c.HealthScore) })
}
