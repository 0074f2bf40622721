package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/clientflow/internal/auth"
	"github.com/sadopc/clientflow/internal/export"
	"github.com/sadopc/clientflow/internal/store"
)

// App is the root Bubble Tea model.
type App struct {
	store *store.Store
	auth  *auth.Manager

	width  int
	height int

	loggedIn  bool
	userEmail string

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	login         loginModel
	dashboard     dashboardModel
	conversations conversationsModel
	clients       clientsModel
	templates     templatesModel
	settings      settingsModel

	help   help.Model
	status string
}

func NewApp(s *store.Store, a *auth.Manager) App {
	h := help.New()
	h.ShowAll = false

	app := App{
		store:         s,
		auth:          a,
		activeView:    viewForSection(s.ActiveSection()),
		login:         newLoginModel(a),
		dashboard:     newDashboardModel(s),
		conversations: newConversationsModel(s),
		clients:       newClientsModel(s),
		templates:     newTemplatesModel(s),
		settings:      newSettingsModel(s),
		help:          h,
	}

	if session, ok := a.Current(); ok {
		app.loggedIn = true
		app.userEmail = session.Email
	}

	return app
}

func (a App) Init() tea.Cmd {
	if !a.loggedIn {
		return a.login.Init()
	}
	return tea.Batch(
		a.dashboard.Init(),
		a.conversations.refresh(),
		a.clients.refresh(),
		a.templates.refresh(),
		a.settings.refresh(),
	)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.login.setSize(a.width, a.height)
		a.dashboard.setSize(a.width, contentHeight)
		a.conversations.setSize(a.width, contentHeight)
		a.clients.setSize(a.width, contentHeight)
		a.templates.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case loggedInMsg:
		a.loggedIn = true
		a.userEmail = msg.email
		a.status = "Signed in as " + msg.email
		return a, a.Init()

	case loggedOutMsg:
		a.loggedIn = false
		a.userEmail = ""
		a.login = newLoginModel(a.auth)
		a.login.setSize(a.width, a.height)
		return a, a.login.Init()

	case statusMsg:
		a.status = msg.text
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil
	}

	if !a.loggedIn {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		var cmd tea.Cmd
		a.login, cmd = a.login.update(msg)
		return a, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		// Export picker
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Logout):
			a.auth.Logout()
			return a, func() tea.Msg { return loggedOutMsg{} }
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			return a.switchView(viewDashboard)
		case key.Matches(msg, keys.Tab2):
			return a.switchView(viewConversations)
		case key.Matches(msg, keys.Tab3):
			return a.switchView(viewClients)
		case key.Matches(msg, keys.Tab4):
			return a.switchView(viewTemplates)
		case key.Matches(msg, keys.Tab5):
			return a.switchView(viewSettings)
		case key.Matches(msg, keys.Tab):
			return a.switchView((a.activeView + 1) % 5)
		}
	}

	return a.updateActiveView(msg)
}

func (a App) switchView(v viewState) (tea.Model, tea.Cmd) {
	a.activeView = v
	a.store.SetActiveSection(sectionIDs[v])
	return a, a.refreshCurrentView()
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewConversations:
		a.conversations, cmd = a.conversations.update(msg)
	case viewClients:
		a.clients, cmd = a.clients.update(msg)
	case viewTemplates:
		a.templates, cmd = a.templates.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewDashboard:
		return a.dashboard.formActive
	case viewConversations:
		return a.conversations.formActive
	case viewClients:
		return a.clients.formActive
	case viewTemplates:
		return a.templates.formActive
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewDashboard:
		return a.dashboard.loadData()
	case viewConversations:
		return a.conversations.refresh()
	case viewClients:
		return a.clients.refresh()
	case viewTemplates:
		return a.templates.refresh()
	case viewSettings:
		return a.settings.refresh()
	}
	return nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	if !a.loggedIn {
		return a.login.view()
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewDashboard:
		content = a.dashboard.view()
	case viewConversations:
		content = a.conversations.view()
	case viewClients:
		content = a.clients.view()
	case viewTemplates:
		content = a.templates.view()
	case viewSettings:
		content = a.settings.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		label := name
		if viewState(i) == viewConversations {
			if n := a.store.UnreadCount(); n > 0 {
				label = fmt.Sprintf("%s (%d)", name, n)
			}
		}
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("clientflow")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	user := ""
	if a.userEmail != "" {
		user = highlightStyle.Render(" " + a.userEmail)
	}

	left := footerStyle.Render(helpView)
	right := user + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

var exportFormats = []string{"Clients CSV", "Conversations CSV", "Full JSON snapshot"}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export")
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range exportFormats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(exportFormats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	return func() tea.Msg {
		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		var err error
		switch format {
		case 0:
			path = filepath.Join(home, fmt.Sprintf("clientflow-clients-%s.csv", dateStr))
			err = export.ClientsToCSV(a.store.Clients(), path)
		case 1:
			path = filepath.Join(home, fmt.Sprintf("clientflow-conversations-%s.csv", dateStr))
			err = export.ConversationsToCSV(a.store.Conversations(), path)
		default:
			path = filepath.Join(home, fmt.Sprintf("clientflow-export-%s.json", dateStr))
			err = export.ToJSON(export.Snapshot{
				SchemaVersion: 1,
				Conversations: a.store.Conversations(),
				Clients:       a.store.Clients(),
				ActionItems:   a.store.ActionItems(),
				Templates:     a.store.Templates(),
				Summaries:     a.store.Summaries(),
				Settings:      a.store.Settings(),
			}, path)
		}
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		return exportDoneMsg{path: path}
	}
}
