package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/clientflow/internal/model"
	"github.com/sadopc/clientflow/internal/seed"
	"github.com/sadopc/clientflow/internal/store"
)

type dashboardModel struct {
	store  *store.Store
	width  int
	height int

	stats    model.DashboardStats
	recent   []model.Conversation
	atRisk   []model.Client
	pending  []model.ActionItem
	scores   []model.Client
	cursor   int
	chart    barchart.Model
	hasChart bool

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formTitle       *string
	formDescription *string
	formPriority    *string
	formDueDays     *string
}

func newDashboardModel(s *store.Store) dashboardModel {
	title, description, priority, dueDays := "", "", string(model.PriorityMedium), ""
	return dashboardModel{
		store:           s,
		chart:           barchart.New(40, 8),
		formTitle:       &title,
		formDescription: &description,
		formPriority:    &priority,
		formDueDays:     &dueDays,
	}
}

func (d dashboardModel) Init() tea.Cmd {
	return d.loadData()
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

type dashboardDataMsg struct {
	stats   model.DashboardStats
	recent  []model.Conversation
	atRisk  []model.Client
	pending []model.ActionItem
	clients []model.Client
}

func (d dashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		conversations := d.store.Conversations()
		sort.Slice(conversations, func(i, j int) bool {
			return conversations[i].CreatedAt.After(conversations[j].CreatedAt)
		})
		if len(conversations) > 5 {
			conversations = conversations[:5]
		}

		var pending []model.ActionItem
		for _, a := range d.store.ActionItems() {
			if a.Status == model.ActionPending || a.Status == model.ActionInProgress {
				pending = append(pending, a)
			}
		}
		if len(pending) > 5 {
			pending = pending[:5]
		}

		return dashboardDataMsg{
			stats:   d.store.DashboardStats(),
			recent:  conversations,
			atRisk:  d.store.AtRiskClients(),
			pending: pending,
			clients: d.store.Clients(),
		}
	}
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if d.formActive && d.form != nil {
		return d.updateForm(msg)
	}

	switch msg := msg.(type) {
	case dashboardDataMsg:
		d.stats = msg.stats
		d.recent = msg.recent
		d.atRisk = msg.atRisk
		d.pending = msg.pending
		d.scores = msg.clients
		if d.cursor >= len(d.pending) {
			d.cursor = max(0, len(d.pending)-1)
		}
		d.buildChart()
		return d, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if d.cursor > 0 {
				d.cursor--
			}
		case key.Matches(msg, keys.Down):
			if d.cursor < len(d.pending)-1 {
				d.cursor++
			}
		case key.Matches(msg, keys.Complete):
			if len(d.pending) > 0 {
				d.store.CompleteActionItem(d.pending[d.cursor].ID)
				return d, tea.Batch(d.loadData(), status("Action item completed"))
			}
		case key.Matches(msg, keys.New):
			return d.showNewForm()
		case key.Matches(msg, keys.Delete):
			if len(d.pending) > 0 {
				d.store.DeleteActionItem(d.pending[d.cursor].ID)
				return d, tea.Batch(d.loadData(), status("Action item deleted"))
			}
		}
	}
	return d, nil
}

func (d dashboardModel) showNewForm() (dashboardModel, tea.Cmd) {
	*d.formTitle = ""
	*d.formDescription = ""
	*d.formPriority = string(model.PriorityMedium)
	*d.formDueDays = ""

	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(d.formTitle),
			huh.NewText().Title("Description").Value(d.formDescription),
			huh.NewSelect[string]().Title("Priority").
				Options(
					huh.NewOption("High", string(model.PriorityHigh)),
					huh.NewOption("Medium", string(model.PriorityMedium)),
					huh.NewOption("Low", string(model.PriorityLow)),
				).Value(d.formPriority),
			huh.NewInput().Title("Due in days").Placeholder("optional").
				Value(d.formDueDays).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if n, err := strconv.Atoi(s); err != nil || n < 1 {
						return fmt.Errorf("enter a number of days")
					}
					return nil
				}),
		),
	).WithShowHelp(true).WithShowErrors(true)

	d.formActive = true
	return d, d.form.Init()
}

func (d dashboardModel) updateForm(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			d.formActive = false
			d.form = nil
			return d, nil
		}
	}

	form, cmd := d.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.form = f
	}

	if d.form.State == huh.StateCompleted {
		d.formActive = false
		if *d.formTitle != "" {
			item := model.ActionItem{
				ID:          seed.NewID(),
				Title:       *d.formTitle,
				Description: *d.formDescription,
				Priority:    model.Priority(*d.formPriority),
				Status:      model.ActionPending,
				CreatedAt:   time.Now().UTC(),
			}
			if days, err := strconv.Atoi(*d.formDueDays); err == nil && days > 0 {
				due := time.Now().UTC().AddDate(0, 0, days)
				item.DueDate = &due
			}
			if !d.store.AddActionItem(item) {
				return d, statusError("Could not save action item")
			}
			return d, tea.Batch(d.loadData(), status("Action item added"))
		}
		return d, d.loadData()
	}

	return d, cmd
}

func (d *dashboardModel) buildChart() {
	if len(d.scores) == 0 {
		d.hasChart = false
		return
	}

	chartWidth := d.width - 10
	if chartWidth < 20 {
		chartWidth = 20
	}
	d.chart = barchart.New(chartWidth, 8)

	var bars []barchart.BarData
	for _, c := range d.scores {
		style := healthStyle(c.HealthScore.Status)
		bars = append(bars, barchart.BarData{
			Label: truncate(c.Name, 10),
			Values: []barchart.BarValue{{
				Name:  c.Name,
				Value: float64(c.HealthScore.Score),
				Style: style,
			}},
		})
	}
	d.chart.PushAll(bars)
	d.chart.Draw()
	d.hasChart = true
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}

	contentWidth := d.width - 4

	if d.formActive && d.form != nil {
		title := titleStyle.Render("New Action Item")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", d.form.View())
		return panelStyle.Width(contentWidth).Render(content)
	}

	statsPanel := d.renderStatsPanel(contentWidth)
	chartPanel := d.renderChartPanel(contentWidth)
	recentPanel := d.renderRecentPanel(contentWidth)
	actionsPanel := d.renderPendingPanel(contentWidth)
	riskPanel := d.renderAtRiskPanel(contentWidth)

	return lipgloss.JoinVertical(lipgloss.Left, statsPanel, chartPanel, recentPanel, actionsPanel, riskPanel)
}

func (d dashboardModel) renderStatsPanel(w int) string {
	stat := func(label string, value string) string {
		return lipgloss.JoinVertical(lipgloss.Center,
			statValueStyle.Render(value),
			mutedStyle.Render(label),
		)
	}

	cells := []string{
		stat("conversations", fmt.Sprintf("%d", d.stats.TotalConversations)),
		stat("unread", fmt.Sprintf("%d", d.stats.UnreadCount)),
		stat("clients", fmt.Sprintf("%d", d.stats.ActiveClients)),
		stat("at risk", fmt.Sprintf("%d", d.stats.AtRiskClients)),
		stat("avg health", fmt.Sprintf("%d", d.stats.AvgHealthScore)),
		stat("pending", fmt.Sprintf("%d", d.stats.PendingActions)),
		stat("resp. time", fmt.Sprintf("%.0fh", d.stats.ResponseTime.Avg)),
	}

	cellWidth := (w - 6) / len(cells)
	if cellWidth < 8 {
		cellWidth = 8
	}
	for i, c := range cells {
		cells[i] = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Render(c)
	}

	return panelStyle.Width(w).Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

func (d dashboardModel) renderChartPanel(w int) string {
	title := titleStyle.Render("Client Health")
	if !d.hasChart {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("No clients yet"),
		))
	}
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, title, "", d.chart.View()))
}

func (d dashboardModel) renderRecentPanel(w int) string {
	title := titleStyle.Render("Recent Conversations")
	if len(d.recent) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("No conversations yet"),
		))
	}

	var rows []string
	rows = append(rows, title)
	for _, c := range d.recent {
		unread := " "
		if c.Unread {
			unread = highlightStyle.Render("●")
		}
		row := fmt.Sprintf("  %s %s %s  %-20s %s",
			unread,
			priorityLabel(c.Priority),
			sentimentDot(c.Sentiment),
			truncate(c.Client, 20),
			truncate(c.Subject, max(10, w-40)),
		)
		rows = append(rows, row)
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderPendingPanel(w int) string {
	title := titleStyle.Render("Pending Actions")
	if len(d.pending) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("Nothing pending. Press n to add an action item."),
		))
	}

	var rows []string
	rows = append(rows, title)
	for i, a := range d.pending {
		cursor := "  "
		style := normalItemStyle
		if i == d.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		state := " "
		if a.Status == model.ActionInProgress {
			state = highlightStyle.Render("◐")
		}
		due := ""
		if a.DueDate != nil {
			due = mutedStyle.Render("due " + a.DueDate.Local().Format("Jan 2"))
		}
		rows = append(rows, fmt.Sprintf("%s%s %s %s %s",
			cursor, state, priorityLabel(a.Priority),
			style.Render(truncate(a.Title, max(10, w-30))), due))
	}
	rows = append(rows, mutedStyle.Render("  n: new  c: complete  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderAtRiskPanel(w int) string {
	title := titleStyle.Render("At-Risk Clients")
	if len(d.atRisk) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			successStyle.Render("All clients healthy"),
		))
	}

	var rows []string
	rows = append(rows, title)
	for _, c := range d.atRisk {
		score := healthStyle(c.HealthScore.Status).Render(fmt.Sprintf("%3d", c.HealthScore.Score))
		trend := trendArrow(c.HealthScore.Trend)
		rows = append(rows, fmt.Sprintf("  %s %s %-24s %s",
			score, trend, truncate(c.Name, 24), mutedStyle.Render(c.HealthScore.LastActivity)))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func trendArrow(t model.Trend) string {
	switch t {
	case model.TrendUp:
		return successStyle.Render("↑")
	case model.TrendDown:
		return errorStyle.Render("↓")
	default:
		return mutedStyle.Render("→")
	}
}
