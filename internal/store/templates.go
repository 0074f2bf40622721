package store

import (
	"time"

	"github.com/sadopc/clientflow/internal/model"
)

func (s *Store) LoadTemplates() {
	s.mu.Lock()
	s.loading.Templates = true
	s.mu.Unlock()

	templates := s.repos.Templates.GetAll()

	s.mu.Lock()
	s.templates = templates
	s.loading.Templates = false
	s.mu.Unlock()
}

func (s *Store) Templates() []model.ResponseTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.ResponseTemplate, len(s.templates))
	copy(out, s.templates)
	return out
}

func (s *Store) TemplateByID(id string) (model.ResponseTemplate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.templates {
		if t.ID == id {
			return t, true
		}
	}
	return model.ResponseTemplate{}, false
}

func (s *Store) AddTemplate(t model.ResponseTemplate) bool {
	s.mu.Lock()
	s.templates = append(s.templates, t)
	templates := make([]model.ResponseTemplate, len(s.templates))
	copy(templates, s.templates)
	s.mu.Unlock()

	return s.repos.Templates.Save(templates)
}

func (s *Store) UpdateTemplate(id string, p model.TemplatePatch) bool {
	s.mu.Lock()
	found := false
	now := time.Now().UTC()
	for i := range s.templates {
		if s.templates[i].ID == id {
			p.Apply(&s.templates[i])
			s.templates[i].UpdatedAt = now
			found = true
			break
		}
	}
	templates := make([]model.ResponseTemplate, len(s.templates))
	copy(templates, s.templates)
	s.mu.Unlock()

	if !found {
		return false
	}
	return s.repos.Templates.Save(templates)
}

func (s *Store) DeleteTemplate(id string) bool {
	s.mu.Lock()
	remaining := s.templates[:0]
	for _, t := range s.templates {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}
	s.templates = remaining
	templates := make([]model.ResponseTemplate, len(s.templates))
	copy(templates, s.templates)
	s.mu.Unlock()

	return s.repos.Templates.Save(templates)
}

func (s *Store) IncrementTemplateUsage(id string) bool {
	s.mu.RLock()
	var next int
	found := false
	for _, t := range s.templates {
		if t.ID == id {
			next = t.UsageCount + 1
			found = true
			break
		}
	}
	s.mu.RUnlock()

	if !found {
		return false
	}
	return s.UpdateTemplate(id, model.TemplatePatch{UsageCount: &next})
}
