package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/clientflow/internal/model"
	"github.com/sadopc/clientflow/internal/seed"
	"github.com/sadopc/clientflow/internal/store"
)

var riskCycle = []model.RiskLevel{"", model.RiskLow, model.RiskMedium, model.RiskHigh}

type clientsModel struct {
	store  *store.Store
	width  int
	height int

	clients       []model.Client
	cursor        int
	viewingDetail bool
	filterIdx     int

	formActive bool
	form       *huh.Form
	formType   string // "client" or "health"
	editingID  string

	formName    *string
	formEmail   *string
	formCompany *string
	formScore   *string
}

func newClientsModel(s *store.Store) clientsModel {
	name, email, company, score := "", "", "", ""
	return clientsModel{
		store:       s,
		formName:    &name,
		formEmail:   &email,
		formCompany: &company,
		formScore:   &score,
	}
}

func (c *clientsModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

type clientsDataMsg struct {
	clients []model.Client
}

func (c clientsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return clientsDataMsg{clients: c.store.FilteredClients()}
	}
}

func (c clientsModel) update(msg tea.Msg) (clientsModel, tea.Cmd) {
	if c.formActive && c.form != nil {
		return c.updateForm(msg)
	}

	switch msg := msg.(type) {
	case clientsDataMsg:
		c.clients = msg.clients
		if c.cursor >= len(c.clients) {
			c.cursor = max(0, len(c.clients)-1)
		}
		return c, nil

	case tea.KeyMsg:
		if c.viewingDetail {
			return c.updateDetail(msg)
		}
		return c.updateList(msg)
	}
	return c, nil
}

func (c clientsModel) updateList(msg tea.KeyMsg) (clientsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if c.cursor > 0 {
			c.cursor--
		}
	case key.Matches(msg, keys.Down):
		if c.cursor < len(c.clients)-1 {
			c.cursor++
		}
	case key.Matches(msg, keys.Enter):
		if len(c.clients) > 0 {
			c.viewingDetail = true
			c.store.SelectClient(c.clients[c.cursor].ID)
		}
	case key.Matches(msg, keys.New):
		return c.showNewClientForm()
	case key.Matches(msg, keys.Delete):
		if len(c.clients) > 0 {
			c.store.DeleteClient(c.clients[c.cursor].ID)
			return c, tea.Batch(c.refresh(), status("Client deleted"))
		}
	case key.Matches(msg, keys.Filter):
		c.filterIdx = (c.filterIdx + 1) % len(riskCycle)
		f := c.store.ClientFilters()
		f.RiskLevel = riskCycle[c.filterIdx]
		c.store.SetClientFilters(f)
		c.cursor = 0
		return c, c.refresh()
	}
	return c, nil
}

func (c clientsModel) updateDetail(msg tea.KeyMsg) (clientsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		c.viewingDetail = false
		c.store.SelectClient("")
	case key.Matches(msg, keys.Enter):
		return c.showHealthForm()
	}
	return c, nil
}

func (c clientsModel) showNewClientForm() (clientsModel, tea.Cmd) {
	*c.formName = ""
	*c.formEmail = ""
	*c.formCompany = ""
	c.formType = "client"

	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(c.formName),
			huh.NewInput().Title("Email").Value(c.formEmail),
			huh.NewInput().Title("Company").Value(c.formCompany),
		),
	).WithShowHelp(true).WithShowErrors(true)

	c.formActive = true
	return c, c.form.Init()
}

func (c clientsModel) showHealthForm() (clientsModel, tea.Cmd) {
	if len(c.clients) == 0 {
		return c, nil
	}
	client := c.clients[c.cursor]
	*c.formScore = strconv.Itoa(client.HealthScore.Score)
	c.formType = "health"
	c.editingID = client.ID

	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Health score (0-100)").Value(c.formScore).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 0 || n > 100 {
						return fmt.Errorf("enter a number between 0 and 100")
					}
					return nil
				}),
		),
	).WithShowHelp(true).WithShowErrors(true)

	c.formActive = true
	return c, c.form.Init()
}

func (c clientsModel) updateForm(msg tea.Msg) (clientsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			c.formActive = false
			c.form = nil
			return c, nil
		}
	}

	form, cmd := c.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		c.form = f
	}

	if c.form.State == huh.StateCompleted {
		c.formActive = false
		switch c.formType {
		case "client":
			if *c.formName != "" && strings.Contains(*c.formEmail, "@") {
				now := time.Now().UTC()
				client := model.Client{
					ID:      seed.NewID(),
					Name:    *c.formName,
					Email:   *c.formEmail,
					Company: *c.formCompany,
					HealthScore: model.HealthScore{
						Score:       75,
						Trend:       model.TrendStable,
						Status:      model.StatusForScore(75),
						LastUpdated: now,
					},
					CreatedAt: now,
					UpdatedAt: now,
				}
				if !c.store.AddClient(client) {
					return c, statusError("Could not save client")
				}
				return c, tea.Batch(c.refresh(), status("Client added"))
			}
			return c, statusError("Name and a valid email are required")
		case "health":
			score, err := strconv.Atoi(*c.formScore)
			if err == nil {
				c.store.UpdateClientHealth(c.editingID, model.HealthPatch{Score: &score})
			}
			return c, tea.Batch(c.refresh(), status("Health score updated"))
		}
	}

	return c, cmd
}

func (c clientsModel) view() string {
	if c.formActive && c.form != nil {
		title := titleStyle.Render("New Client")
		if c.formType == "health" {
			title = titleStyle.Render("Update Health Score")
		}
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", c.form.View())
		return panelStyle.Width(c.width - 4).Render(content)
	}

	if c.viewingDetail {
		return c.renderDetail()
	}
	return c.renderList()
}

func (c clientsModel) renderList() string {
	w := c.width - 4
	title := titleStyle.Render("Clients")
	if f := riskCycle[c.filterIdx]; f != "" {
		title += mutedStyle.Render("  risk: " + string(f))
	}

	if len(c.clients) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No clients. Press n to add one."),
		))
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	header := mutedStyle.Render(fmt.Sprintf("  %-5s %-3s %-24s %-24s %s", "Score", "", "Name", "Company", "Status"))
	rows = append(rows, header)

	for i, client := range c.clients {
		cursor := "  "
		style := normalItemStyle
		if i == c.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		score := healthStyle(client.HealthScore.Status).Render(fmt.Sprintf("%5d", client.HealthScore.Score))
		row := fmt.Sprintf("%s%s %s %s %s",
			cursor,
			score,
			trendArrow(client.HealthScore.Trend),
			style.Render(fmt.Sprintf("%-24s", truncate(client.Name, 24))),
			fmt.Sprintf("%-24s %s", truncate(client.Company, 24),
				healthStyle(client.HealthScore.Status).Render(string(client.HealthScore.Status))),
		)
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  d: delete  f: filter risk  enter: detail"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (c clientsModel) renderDetail() string {
	w := c.width - 4
	if len(c.clients) == 0 || c.cursor >= len(c.clients) {
		return panelStyle.Width(w).Render(mutedStyle.Render("Nothing selected"))
	}
	client := c.clients[c.cursor]
	hs := client.HealthScore

	var rows []string
	rows = append(rows, titleStyle.Render(client.Name)+mutedStyle.Render("  "+client.Company))
	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("  %-14s %s", "Email", client.Email))
	if client.ContactInfo.Phone != "" {
		rows = append(rows, fmt.Sprintf("  %-14s %s", "Phone", client.ContactInfo.Phone))
	}
	rows = append(rows, fmt.Sprintf("  %-14s %s %s  (%s)",
		"Health",
		healthStyle(hs.Status).Render(fmt.Sprintf("%d", hs.Score)),
		trendArrow(hs.Trend),
		healthStyle(hs.Status).Render(string(hs.Status)),
	))
	rows = append(rows, fmt.Sprintf("  %-14s %d", "Open issues", hs.Issues))
	if hs.LastActivity != "" {
		rows = append(rows, fmt.Sprintf("  %-14s %s", "Last activity", hs.LastActivity))
	}
	if client.ContractInfo.Value > 0 {
		rows = append(rows, fmt.Sprintf("  %-14s %.0f", "Contract", client.ContractInfo.Value))
	}
	if client.ContractInfo.RenewalDate != nil {
		rows = append(rows, fmt.Sprintf("  %-14s %s", "Renews", client.ContractInfo.RenewalDate.Format("Jan 02, 2006")))
	}
	if client.Notes != "" {
		rows = append(rows, "")
		rows = append(rows, lipgloss.NewStyle().Width(w-6).Render(client.Notes))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: update score  esc: back"))

	return activePanelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
