package store

import (
	"time"

	"github.com/sadopc/clientflow/internal/model"
)

func (s *Store) LoadClients() {
	s.mu.Lock()
	s.loading.Clients = true
	s.mu.Unlock()

	clients := s.repos.Clients.GetAll()

	s.mu.Lock()
	s.clients = clients
	s.loading.Clients = false
	s.mu.Unlock()
}

func (s *Store) Clients() []model.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

func (s *Store) ClientByID(id string) (model.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return model.Client{}, false
}

func (s *Store) AddClient(c model.Client) bool {
	s.mu.Lock()
	s.clients = append(s.clients, c)
	clients := make([]model.Client, len(s.clients))
	copy(clients, s.clients)
	s.mu.Unlock()

	return s.repos.Clients.Save(clients)
}

func (s *Store) UpdateClient(id string, p model.ClientPatch) bool {
	s.mu.Lock()
	found := false
	now := time.Now().UTC()
	for i := range s.clients {
		if s.clients[i].ID == id {
			p.Apply(&s.clients[i])
			s.clients[i].UpdatedAt = now
			found = true
			break
		}
	}
	clients := make([]model.Client, len(s.clients))
	copy(clients, s.clients)
	s.mu.Unlock()

	if !found {
		return false
	}
	return s.repos.Clients.Save(clients)
}

// UpdateClientHealth merges a patch into the health sub-record. Status is
// re-derived from the score when the patch does not set it explicitly.
func (s *Store) UpdateClientHealth(id string, p model.HealthPatch) bool {
	s.mu.Lock()
	found := false
	now := time.Now().UTC()
	for i := range s.clients {
		if s.clients[i].ID == id {
			p.Apply(&s.clients[i].HealthScore)
			s.clients[i].UpdatedAt = now
			found = true
			break
		}
	}
	clients := make([]model.Client, len(s.clients))
	copy(clients, s.clients)
	s.mu.Unlock()

	if !found {
		return false
	}
	return s.repos.Clients.Save(clients)
}

func (s *Store) DeleteClient(id string) bool {
	s.mu.Lock()
	remaining := s.clients[:0]
	for _, c := range s.clients {
		if c.ID != id {
			remaining = append(remaining, c)
		}
	}
	s.clients = remaining
	if s.selectedClient == id {
		s.selectedClient = ""
	}
	clients := make([]model.Client, len(s.clients))
	copy(clients, s.clients)
	s.mu.Unlock()

	return s.repos.Clients.Save(clients)
}
