package store

import "github.com/sadopc/clientflow/internal/model"

func (s *Store) LoadSettings() {
	s.mu.Lock()
	s.loading.Settings = true
	s.mu.Unlock()

	settings := s.repos.Settings.Get()

	s.mu.Lock()
	s.settings = settings
	s.loading.Settings = false
	s.mu.Unlock()
}

func (s *Store) Settings() model.UserSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Store) UpdateSettings(p model.SettingsPatch) bool {
	s.mu.Lock()
	p.Apply(&s.settings)
	settings := s.settings
	s.mu.Unlock()

	return s.repos.Settings.Save(settings)
}
