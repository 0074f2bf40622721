package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/clientflow/internal/auth"
	"github.com/sadopc/clientflow/internal/model"
	"github.com/sadopc/clientflow/internal/repo"
	"github.com/sadopc/clientflow/internal/storage"
	"github.com/sadopc/clientflow/internal/store"
)

func newTestStore(t *testing.T) (*store.Store, *auth.Manager) {
	t.Helper()
	b, err := storage.NewMemorySQLite()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	st := storage.New(b)
	t.Cleanup(func() { st.Close() })
	return store.New(repo.New(st), st), auth.NewManager(st)
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// ============================================================
// Helpers
// ============================================================

func TestViewForSection(t *testing.T) {
	cases := map[string]viewState{
		"dashboard":     viewDashboard,
		"conversations": viewConversations,
		"clients":       viewClients,
		"templates":     viewTemplates,
		"settings":      viewSettings,
		"bogus":         viewDashboard,
		"":              viewDashboard,
	}
	for section, want := range cases {
		if got := viewForSection(section); got != want {
			t.Fatalf("viewForSection(%q) = %d, want %d", section, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Fatalf("short string should pass through, got %q", got)
	}
	if got := truncate("hello world", 6); got != "hello…" {
		t.Fatalf("truncate = %q", got)
	}
	// Rune-aware: multibyte names must not be cut mid-rune.
	if got := truncate("héllo wörld", 6); got != "héllo…" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("日本語のテキスト", 5); got != "日本語の…" {
		t.Fatalf("truncate = %q", got)
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()
	cases := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-49 * time.Hour), "2d ago"},
	}
	for _, c := range cases {
		if got := relativeTime(c.t); got != c.want {
			t.Fatalf("relativeTime = %q, want %q", got, c.want)
		}
	}
}

// ============================================================
// Conversations view
// ============================================================

func seedConversations(t *testing.T, s *store.Store) {
	t.Helper()
	now := time.Now().UTC()
	for _, c := range []model.Conversation{
		{ID: "c1", ClientID: "x", Client: "Acme", Subject: "Outage", Preview: "p", FullContent: "Overnight outage hit EU tenants. Impact was limited to reporting. Need a status call today. Billing question can wait.", Priority: model.PriorityHigh, Sentiment: model.SentimentNegative, Unread: true, CreatedAt: now, UpdatedAt: now},
		{ID: "c2", ClientID: "y", Client: "Beta", Subject: "Renewal", Preview: "p", Priority: model.PriorityLow, Sentiment: model.SentimentPositive, CreatedAt: now.Add(-time.Hour), UpdatedAt: now},
	} {
		if !s.AddConversation(c) {
			t.Fatal("add conversation")
		}
	}
}

func TestConversationsFilterCycle(t *testing.T) {
	s, _ := newTestStore(t)
	seedConversations(t, s)

	m := newConversationsModel(s)
	m, cmd := m.update(tea.Msg(conversationsDataMsg{conversations: s.FilteredConversations()}))
	if len(m.conversations) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(m.conversations))
	}

	// f cycles to the high-priority filter.
	m, cmd = m.update(tea.Msg(keyMsg("f")))
	if cmd == nil {
		t.Fatal("filter should trigger a refresh")
	}
	if got := s.ConversationFilters().Priority; got != model.PriorityHigh {
		t.Fatalf("filter priority = %q", got)
	}
	m, _ = m.update(cmd())
	if len(m.conversations) != 1 || m.conversations[0].ID != "c1" {
		t.Fatalf("filtered list wrong: %+v", m.conversations)
	}
}

func TestConversationsOpenMarksRead(t *testing.T) {
	s, _ := newTestStore(t)
	seedConversations(t, s)

	m := newConversationsModel(s)
	m, _ = m.update(tea.Msg(conversationsDataMsg{conversations: s.FilteredConversations()}))

	// Cursor starts on the newest, which is unread.
	m, _ = m.update(tea.Msg(keyMsg("enter")))
	if !m.viewingDetail {
		t.Fatal("enter should open detail")
	}
	got, ok := s.ConversationByID("c1")
	if !ok || got.Unread {
		t.Fatal("opening should mark the conversation read")
	}
	if s.SelectedConversation() != "c1" {
		t.Fatal("selection should track the opened conversation")
	}

	m, _ = m.update(tea.Msg(keyMsg("esc")))
	if m.viewingDetail {
		t.Fatal("esc should close detail")
	}
	if s.SelectedConversation() != "" {
		t.Fatal("closing should clear the selection")
	}
}

func TestConversationsDelete(t *testing.T) {
	s, _ := newTestStore(t)
	seedConversations(t, s)

	m := newConversationsModel(s)
	m, _ = m.update(tea.Msg(conversationsDataMsg{conversations: s.FilteredConversations()}))
	m, _ = m.update(tea.Msg(keyMsg("d")))

	if len(s.Conversations()) != 1 {
		t.Fatalf("expected 1 conversation after delete, got %d", len(s.Conversations()))
	}
}

func TestConversationsSummarize(t *testing.T) {
	s, _ := newTestStore(t)
	seedConversations(t, s)

	m := newConversationsModel(s)
	m, _ = m.update(tea.Msg(conversationsDataMsg{conversations: s.FilteredConversations()}))
	m, _ = m.update(tea.Msg(keyMsg("enter"))) // open c1
	m, _ = m.update(tea.Msg(keyMsg("s")))

	sum, ok := s.SummaryByConversation("c1")
	if !ok {
		t.Fatal("summarize should store a summary for the open conversation")
	}
	if len(sum.TLDR) != 3 {
		t.Fatalf("tldr points = %d, want 3", len(sum.TLDR))
	}
	if sum.TLDR[0] != "Overnight outage hit EU tenants" {
		t.Fatalf("tldr[0] = %q", sum.TLDR[0])
	}
	if sum.Sentiment != model.SentimentNegative {
		t.Fatalf("summary sentiment = %q", sum.Sentiment)
	}

	// Summarizing again must not duplicate.
	m, _ = m.update(tea.Msg(keyMsg("s")))
	if got := len(s.Summaries()); got != 1 {
		t.Fatalf("summaries after repeat = %d, want 1", got)
	}

	m.setSize(100, 40)
	if view := m.view(); !strings.Contains(view, "TL;DR") {
		t.Fatal("detail view should render the stored summary")
	}
}

// ============================================================
// Clients view
// ============================================================

func TestClientsRiskFilterCycle(t *testing.T) {
	s, _ := newTestStore(t)
	now := time.Now().UTC()
	s.AddClient(model.Client{ID: "a", Name: "Alpha", Email: "a@x.com", HealthScore: model.HealthScore{Score: 90, Trend: model.TrendUp, Status: model.HealthExcellent, LastUpdated: now}, CreatedAt: now, UpdatedAt: now})
	s.AddClient(model.Client{ID: "b", Name: "Beta", Email: "b@x.com", HealthScore: model.HealthScore{Score: 30, Trend: model.TrendDown, Status: model.HealthCritical, LastUpdated: now}, CreatedAt: now, UpdatedAt: now})

	m := newClientsModel(s)
	m, _ = m.update(tea.Msg(clientsDataMsg{clients: s.FilteredClients()}))
	if len(m.clients) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(m.clients))
	}

	m, cmd := m.update(tea.Msg(keyMsg("f")))
	if s.ClientFilters().RiskLevel != model.RiskLow {
		t.Fatalf("risk filter = %q", s.ClientFilters().RiskLevel)
	}
	m, _ = m.update(cmd())
	if len(m.clients) != 1 || m.clients[0].ID != "a" {
		t.Fatalf("low-risk filter should keep only the healthy client: %+v", m.clients)
	}
}

// ============================================================
// Dashboard view
// ============================================================

func TestDashboardLoadData(t *testing.T) {
	s, _ := newTestStore(t)
	seedConversations(t, s)
	now := time.Now().UTC()
	s.AddClient(model.Client{ID: "a", Name: "Alpha", Email: "a@x.com", HealthScore: model.HealthScore{Score: 40, Trend: model.TrendDown, Status: model.HealthAtRisk, LastUpdated: now}, CreatedAt: now, UpdatedAt: now})

	d := newDashboardModel(s)
	d.setSize(100, 40)
	msg := d.loadData()()
	d, _ = d.update(msg)

	if d.stats.TotalConversations != 2 {
		t.Fatalf("stats conversations = %d", d.stats.TotalConversations)
	}
	if d.stats.AtRiskClients != 1 {
		t.Fatalf("stats at-risk = %d", d.stats.AtRiskClients)
	}
	if !d.hasChart {
		t.Fatal("chart should be built once clients exist")
	}
	if view := d.view(); view == "" {
		t.Fatal("dashboard view should render")
	}
}

func TestDashboardRecentNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)
	now := time.Now().UTC()
	// Inserted out of chronological order on purpose.
	for _, hoursAgo := range []int{5, 1, 6, 0, 3, 2, 4} {
		created := now.Add(-time.Duration(hoursAgo) * time.Hour)
		c := model.Conversation{
			ID: "c" + string(rune('0'+hoursAgo)), ClientID: "x", Client: "Acme",
			Subject: "s", Preview: "p", Priority: model.PriorityLow,
			Sentiment: model.SentimentNeutral, CreatedAt: created, UpdatedAt: now,
		}
		if !s.AddConversation(c) {
			t.Fatal("add conversation")
		}
	}

	d := newDashboardModel(s)
	msg := d.loadData()().(dashboardDataMsg)
	if len(msg.recent) != 5 {
		t.Fatalf("recent = %d conversations, want 5", len(msg.recent))
	}
	if msg.recent[0].ID != "c0" {
		t.Fatalf("recent[0] = %s, want the newest conversation", msg.recent[0].ID)
	}
	for i := 1; i < len(msg.recent); i++ {
		if msg.recent[i].CreatedAt.After(msg.recent[i-1].CreatedAt) {
			t.Fatal("recent conversations should be newest first")
		}
	}
}

// ============================================================
// Dashboard action items
// ============================================================

func seedActionItems(t *testing.T, s *store.Store) {
	t.Helper()
	now := time.Now().UTC()
	for _, a := range []model.ActionItem{
		{ID: "a1", Title: "Schedule emergency call", Priority: model.PriorityHigh, Status: model.ActionPending, CreatedAt: now},
		{ID: "a2", Title: "Prepare updated timeline", Priority: model.PriorityHigh, Status: model.ActionInProgress, CreatedAt: now},
		{ID: "a3", Title: "Send recap", Priority: model.PriorityLow, Status: model.ActionCompleted, CreatedAt: now},
	} {
		if !s.AddActionItem(a) {
			t.Fatal("add action item")
		}
	}
}

func TestDashboardRendersPendingActions(t *testing.T) {
	s, _ := newTestStore(t)
	seedActionItems(t, s)

	d := newDashboardModel(s)
	d.setSize(100, 40)
	d, _ = d.update(d.loadData()())

	if len(d.pending) != 2 {
		t.Fatalf("pending = %d items, want 2 (completed excluded)", len(d.pending))
	}
	view := d.view()
	if !strings.Contains(view, "Pending Actions") {
		t.Fatal("dashboard should render the pending actions panel")
	}
	if !strings.Contains(view, "Schedule emergency call") {
		t.Fatal("pending panel should list open action items")
	}
	if strings.Contains(view, "Send recap") {
		t.Fatal("completed items do not belong on the pending panel")
	}
}

func TestDashboardCompleteActionItem(t *testing.T) {
	s, _ := newTestStore(t)
	seedActionItems(t, s)

	d := newDashboardModel(s)
	d.setSize(100, 40)
	d, _ = d.update(d.loadData()())

	// Cursor starts on a1.
	d, cmd := d.update(tea.Msg(keyMsg("c")))
	if cmd == nil {
		t.Fatal("complete should trigger a refresh")
	}

	var done model.ActionItem
	for _, a := range s.ActionItems() {
		if a.ID == "a1" {
			done = a
		}
	}
	if done.Status != model.ActionCompleted {
		t.Fatalf("a1 status = %q, want completed", done.Status)
	}
	if done.CompletedAt == nil {
		t.Fatal("completing should stamp CompletedAt")
	}

	d, _ = d.update(d.loadData()())
	if len(d.pending) != 1 || d.pending[0].ID != "a2" {
		t.Fatalf("pending after complete: %+v", d.pending)
	}
}

func TestDashboardDeleteActionItem(t *testing.T) {
	s, _ := newTestStore(t)
	seedActionItems(t, s)

	d := newDashboardModel(s)
	d, _ = d.update(d.loadData()())
	d, _ = d.update(tea.Msg(keyMsg("d")))

	if len(s.ActionItems()) != 2 {
		t.Fatalf("expected 2 action items after delete, got %d", len(s.ActionItems()))
	}
	if _, ok := findActionItem(s, "a1"); ok {
		t.Fatal("the selected item should be gone")
	}
}

func findActionItem(s *store.Store, id string) (model.ActionItem, bool) {
	for _, a := range s.ActionItems() {
		if a.ID == id {
			return a, true
		}
	}
	return model.ActionItem{}, false
}

func TestDashboardNewActionFormCapturesInput(t *testing.T) {
	s, a := newTestStore(t)
	a.Login("demo@clientflow.app", "pw")
	app := NewApp(s, a)

	d, cmd := app.dashboard.update(tea.Msg(keyMsg("n")))
	if !d.formActive || cmd == nil {
		t.Fatal("n should open the new action item form")
	}
	app.dashboard = d
	if !app.isFormActive() {
		t.Fatal("an open dashboard form should capture key input")
	}
}

// ============================================================
// App shell
// ============================================================

func TestAppStartsAtLoginWithoutSession(t *testing.T) {
	s, a := newTestStore(t)
	app := NewApp(s, a)
	if app.loggedIn {
		t.Fatal("no session yet, app should gate on login")
	}
}

func TestAppSkipsLoginWithSession(t *testing.T) {
	s, a := newTestStore(t)
	if _, err := a.Login("demo@clientflow.app", "pw"); err != nil {
		t.Fatal(err)
	}
	app := NewApp(s, a)
	if !app.loggedIn {
		t.Fatal("existing session should skip login")
	}
	if app.userEmail != "demo@clientflow.app" {
		t.Fatalf("user email = %q", app.userEmail)
	}
}

func TestAppSwitchViewPersistsSection(t *testing.T) {
	s, a := newTestStore(t)
	a.Login("demo@clientflow.app", "pw")
	app := NewApp(s, a)

	next, _ := app.switchView(viewClients)
	app = next.(App)
	if app.activeView != viewClients {
		t.Fatal("view should switch")
	}
	if s.ActiveSection() != "clients" {
		t.Fatalf("persisted section = %q", s.ActiveSection())
	}
}

func TestAppRestoresSection(t *testing.T) {
	s, a := newTestStore(t)
	a.Login("demo@clientflow.app", "pw")
	s.SetActiveSection("templates")

	app := NewApp(s, a)
	if app.activeView != viewTemplates {
		t.Fatalf("active view = %d, want templates", app.activeView)
	}
}
