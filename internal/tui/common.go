package tui

import (
	"fmt"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/clientflow/internal/model"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewConversations
	viewClients
	viewTemplates
	viewSettings
)

var viewNames = []string{"Dashboard", "Conversations", "Clients", "Templates", "Settings"}

// sectionIDs are the persisted names for each view, kept stable across
// releases because they live in the saved UI state.
var sectionIDs = []string{"dashboard", "conversations", "clients", "templates", "settings"}

func viewForSection(section string) viewState {
	for i, id := range sectionIDs {
		if id == section {
			return viewState(i)
		}
	}
	return viewDashboard
}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type dataLoadedMsg struct{}

type exportDoneMsg struct {
	path string
}

type loggedInMsg struct {
	email string
}

type loggedOutMsg struct{}

// --- Helpers ---

func status(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

func statusError(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isError: true} }
}

func truncate(s string, n int) string {
	if n <= 1 || utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}

// relativeTime renders a timestamp the way the web-style dashboards do:
// "just now", "5m ago", "3h ago", "2d ago".
func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

func priorityLabel(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return errorStyle.Render("HIGH")
	case model.PriorityMedium:
		return warningStyle.Render("MED ")
	default:
		return mutedStyle.Render("LOW ")
	}
}

func sentimentDot(s model.Sentiment) string {
	switch s {
	case model.SentimentPositive:
		return successStyle.Render("●")
	case model.SentimentNegative:
		return errorStyle.Render("●")
	default:
		return mutedStyle.Render("●")
	}
}

func healthStyle(status model.HealthStatus) lipgloss.Style {
	switch status {
	case model.HealthExcellent:
		return successStyle
	case model.HealthGood:
		return highlightStyle
	case model.HealthAtRisk:
		return warningStyle
	default:
		return errorStyle
	}
}
