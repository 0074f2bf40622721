package store

import (
	"math"
	"sort"
	"strings"

	"github.com/sadopc/clientflow/internal/model"
)

// Derived views. All recompute from the live in-memory collections on each
// call — no caching, no invalidation.

// FilteredConversations applies the active conversation filters (ANDed) and
// sorts the result newest first.
func (s *Store) FilteredConversations() []model.Conversation {
	s.mu.RLock()
	f := s.conversationFilters
	conversations := make([]model.Conversation, len(s.conversations))
	copy(conversations, s.conversations)
	s.mu.RUnlock()

	filtered := conversations[:0]
	for _, c := range conversations {
		if f.Client != "" && !strings.Contains(strings.ToLower(c.Client), strings.ToLower(f.Client)) {
			continue
		}
		if f.Priority != "" && c.Priority != f.Priority {
			continue
		}
		if f.Sentiment != "" && c.Sentiment != f.Sentiment {
			continue
		}
		if f.Unread != nil && c.Unread != *f.Unread {
			continue
		}
		if len(f.Tags) > 0 && !hasAnyTag(c.Tags, f.Tags) {
			continue
		}
		filtered = append(filtered, c)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	return filtered
}

func hasAnyTag(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

// FilteredClients applies the active client filters (ANDed) and sorts
// ascending by name.
func (s *Store) FilteredClients() []model.Client {
	s.mu.RLock()
	f := s.clientFilters
	clients := make([]model.Client, len(s.clients))
	copy(clients, s.clients)
	s.mu.RUnlock()

	filtered := clients[:0]
	for _, c := range clients {
		if f.Status != "" && c.HealthScore.Status != f.Status {
			continue
		}
		if f.Trend != "" && c.HealthScore.Trend != f.Trend {
			continue
		}
		if f.RiskLevel != "" && c.HealthScore.Score < f.RiskLevel.Threshold() {
			continue
		}
		filtered = append(filtered, c)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Name < filtered[j].Name
	})
	return filtered
}

func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, c := range s.conversations {
		if c.Unread {
			count++
		}
	}
	return count
}

// AtRiskClients returns clients whose status is at-risk or critical,
// regardless of raw score.
func (s *Store) AtRiskClients() []model.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Client
	for _, c := range s.clients {
		if c.AtRisk() {
			out = append(out, c)
		}
	}
	return out
}

// DashboardStats aggregates the headline numbers. The response-time metric
// is a static placeholder until real message timing data exists.
func (s *Store) DashboardStats() model.DashboardStats {
	atRisk := len(s.AtRiskClients())
	unread := s.UnreadCount()

	s.mu.RLock()
	defer s.mu.RUnlock()

	avg := 0.0
	if len(s.clients) > 0 {
		sum := 0
		for _, c := range s.clients {
			sum += c.HealthScore.Score
		}
		avg = float64(sum) / float64(len(s.clients))
	}

	pending, completed := 0, 0
	for _, item := range s.actionItems {
		switch item.Status {
		case model.ActionPending:
			pending++
		case model.ActionCompleted:
			completed++
		}
	}

	return model.DashboardStats{
		TotalConversations: len(s.conversations),
		UnreadCount:        unread,
		ActiveClients:      len(s.clients),
		AtRiskClients:      atRisk,
		AvgHealthScore:     int(math.Round(avg)),
		PendingActions:     pending,
		CompletedActions:   completed,
		ResponseTime: model.ResponseTimeStat{
			Avg:   24,
			Trend: model.TrendStable,
		},
	}
}
