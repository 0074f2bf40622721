package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/clientflow/internal/model"
	"github.com/sadopc/clientflow/internal/storage"
)

func newTestRepos(t *testing.T) (*Repos, *storage.Store) {
	t.Helper()
	b, err := storage.NewMemorySQLite()
	require.NoError(t, err)
	s := storage.New(b)
	t.Cleanup(func() { s.Close() })
	return New(s), s
}

func conversation(id, client string) model.Conversation {
	now := time.Now().UTC()
	return model.Conversation{
		ID:        id,
		ClientID:  "client-" + id,
		Client:    client,
		Subject:   "Subject " + id,
		Preview:   "Preview " + id,
		Timestamp: "just now",
		CreatedAt: now,
		UpdatedAt: now,
		Priority:  model.PriorityMedium,
		Sentiment: model.SentimentNeutral,
		Unread:    true,
	}
}

func client(id, name string, score int) model.Client {
	now := time.Now().UTC()
	return model.Client{
		ID:      id,
		Name:    name,
		Email:   name + "@example.com",
		Company: name + " Co",
		HealthScore: model.HealthScore{
			Score:       score,
			Trend:       model.TrendStable,
			Status:      model.StatusForScore(score),
			LastUpdated: now,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ============================================================
// Conversations
// ============================================================

func TestConversationsAddAndGetAll(t *testing.T) {
	r, _ := newTestRepos(t)

	require.True(t, r.Conversations.Add(conversation("1", "Acme")))
	require.True(t, r.Conversations.Add(conversation("2", "Globex")))

	all := r.Conversations.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "2", all[1].ID)
}

func TestConversationsUpdateStampsUpdatedAt(t *testing.T) {
	r, _ := newTestRepos(t)
	c := conversation("1", "Acme")
	c.UpdatedAt = c.UpdatedAt.Add(-time.Hour)
	c.CreatedAt = c.CreatedAt.Add(-time.Hour)
	require.True(t, r.Conversations.Add(c))

	subject := "Changed"
	require.True(t, r.Conversations.Update("1", model.ConversationPatch{Subject: &subject}))

	got, ok := r.Conversations.GetByID("1")
	require.True(t, ok)
	assert.Equal(t, "Changed", got.Subject)
	assert.True(t, got.UpdatedAt.After(c.UpdatedAt))
}

func TestUpdateMissingIDIsNoOp(t *testing.T) {
	r, _ := newTestRepos(t)
	require.True(t, r.Conversations.Add(conversation("1", "Acme")))

	subject := "Changed"
	assert.False(t, r.Conversations.Update("nope", model.ConversationPatch{Subject: &subject}))

	all := r.Conversations.GetAll()
	require.Len(t, all, 1)
	assert.Equal(t, "Subject 1", all[0].Subject)
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	r, _ := newTestRepos(t)
	require.True(t, r.Conversations.Add(conversation("1", "Acme")))
	require.True(t, r.Conversations.Add(conversation("2", "Globex")))

	require.True(t, r.Conversations.Delete("1"))
	all := r.Conversations.GetAll()
	require.Len(t, all, 1)
	assert.Equal(t, "2", all[0].ID)

	// Deleting a nonexistent id leaves the length unchanged.
	require.True(t, r.Conversations.Delete("nope"))
	assert.Len(t, r.Conversations.GetAll(), 1)
}

func TestGetAllDropsInvalidRecords(t *testing.T) {
	r, s := newTestRepos(t)
	good := conversation("1", "Acme")
	bad := conversation("2", "Globex")
	bad.Priority = "urgent" // not a valid priority
	require.True(t, s.SetJSON(storage.KeyConversations, []model.Conversation{good, bad}))

	all := r.Conversations.GetAll()
	require.Len(t, all, 1)
	assert.Equal(t, "1", all[0].ID)
}

// ============================================================
// Clients
// ============================================================

func TestClientsHealthUpdate(t *testing.T) {
	r, _ := newTestRepos(t)
	require.True(t, r.Clients.Add(client("c1", "Acme", 78)))

	score := 30
	require.True(t, r.Clients.UpdateHealth("c1", model.HealthPatch{Score: &score}))

	got, ok := r.Clients.GetByID("c1")
	require.True(t, ok)
	assert.Equal(t, 30, got.HealthScore.Score)
	assert.Equal(t, model.HealthCritical, got.HealthScore.Status)
}

// ============================================================
// Templates (no validation on read)
// ============================================================

func TestTemplatesReturnRawDecodedData(t *testing.T) {
	r, s := newTestRepos(t)
	// Deliberately sparse record; template reads skip validation.
	require.True(t, s.SetJSON(storage.KeyTemplates, []model.ResponseTemplate{{ID: "t1"}}))
	all := r.Templates.GetAll()
	require.Len(t, all, 1)
	assert.Equal(t, "t1", all[0].ID)
}

func TestTemplateUsageCounter(t *testing.T) {
	r, _ := newTestRepos(t)
	require.True(t, r.Templates.Add(model.ResponseTemplate{ID: "t1", Name: "Check-in", UsageCount: 7}))

	count := 8
	require.True(t, r.Templates.Update("t1", model.TemplatePatch{UsageCount: &count}))
	got, ok := r.Templates.GetByID("t1")
	require.True(t, ok)
	assert.Equal(t, 8, got.UsageCount)
}

// ============================================================
// Singletons
// ============================================================

func TestSettingsDefaultWhenAbsent(t *testing.T) {
	r, _ := newTestRepos(t)
	s := r.Settings.Get()
	assert.Equal(t, model.ThemeDark, s.Theme)
}

func TestSettingsRoundTrip(t *testing.T) {
	r, _ := newTestRepos(t)
	s := model.DefaultSettings()
	s.Theme = model.ThemeLight
	require.True(t, r.Settings.Save(s))
	assert.Equal(t, model.ThemeLight, r.Settings.Get().Theme)
}

func TestSettingsInvalidFallsBackToDefault(t *testing.T) {
	r, store := newTestRepos(t)
	require.True(t, store.SetJSON(storage.KeySettings, map[string]string{"theme": "neon"}))
	assert.Equal(t, model.ThemeDark, r.Settings.Get().Theme)
}

func TestUIStateRoundTrip(t *testing.T) {
	r, _ := newTestRepos(t)
	_, ok := r.UIState.Get()
	assert.False(t, ok)

	require.True(t, r.UIState.Save(model.UIState{SidebarOpen: true, ActiveSection: "clients"}))
	ui, ok := r.UIState.Get()
	require.True(t, ok)
	assert.True(t, ui.SidebarOpen)
	assert.Equal(t, "clients", ui.ActiveSection)
}

// ============================================================
// Summaries
// ============================================================

func TestSummariesByConversation(t *testing.T) {
	r, _ := newTestRepos(t)
	require.True(t, r.Summaries.Add(model.EmailSummary{ID: "s1", ConversationID: "conv-1", TLDR: []string{"short"}}))

	got, ok := r.Summaries.GetByConversation("conv-1")
	require.True(t, ok)
	assert.Equal(t, "s1", got.ID)

	_, ok = r.Summaries.GetByConversation("conv-2")
	assert.False(t, ok)
}
