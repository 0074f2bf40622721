package repo

import (
	"log/slog"
	"time"

	"github.com/sadopc/clientflow/internal/storage"
)

// collection implements the shared repository contract over one persisted
// key. Mutating operations re-read the collection from storage before
// writing: the store holds its own in-memory copy, and re-reading narrows
// (but does not close) the window where the two diverge. Single active
// process is a documented precondition, enforced by the data-dir lock.
type collection[T any] struct {
	store *storage.Store
	key   string
	id    func(T) string
	// validate drops invalid records on read when non-nil.
	validate func(T) error
	// touch stamps UpdatedAt on update when non-nil.
	touch func(*T, time.Time)
}

func (c collection[T]) GetAll() []T {
	var items []T
	if !c.store.GetJSON(c.key, &items) {
		return nil
	}
	if c.validate == nil {
		return items
	}
	valid := items[:0]
	for _, item := range items {
		if err := c.validate(item); err != nil {
			slog.Warn("dropping invalid record", "key", c.key, "error", err)
			continue
		}
		valid = append(valid, item)
	}
	return valid
}

// Save overwrites the entire persisted collection. No merge semantics.
func (c collection[T]) Save(items []T) bool {
	return c.store.SetJSON(c.key, items)
}

func (c collection[T]) Add(item T) bool {
	items := c.GetAll()
	items = append(items, item)
	return c.Save(items)
}

// Update locates id in the freshly read collection, applies the merge, and
// saves. Returns false without writing when id is absent.
func (c collection[T]) Update(id string, apply func(*T)) bool {
	items := c.GetAll()
	for i := range items {
		if c.id(items[i]) != id {
			continue
		}
		apply(&items[i])
		if c.touch != nil {
			c.touch(&items[i], time.Now().UTC())
		}
		return c.Save(items)
	}
	return false
}

func (c collection[T]) Delete(id string) bool {
	items := c.GetAll()
	remaining := items[:0]
	for _, item := range items {
		if c.id(item) != id {
			remaining = append(remaining, item)
		}
	}
	return c.Save(remaining)
}

func (c collection[T]) GetByID(id string) (T, bool) {
	for _, item := range c.GetAll() {
		if c.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
