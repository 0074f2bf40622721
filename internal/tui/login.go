package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/clientflow/internal/auth"
)

type loginModel struct {
	auth   *auth.Manager
	width  int
	height int

	form    *huh.Form
	email   *string
	passwd  *string
	failure string
}

func newLoginModel(a *auth.Manager) loginModel {
	email, passwd := "", ""
	m := loginModel{
		auth:   a,
		email:  &email,
		passwd: &passwd,
	}
	m.form = m.newForm()
	return m
}

func (l loginModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Email").Placeholder("you@company.com").Value(l.email),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(l.passwd),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

func (l *loginModel) setSize(w, h int) {
	l.width = w
	l.height = h
}

func (l loginModel) Init() tea.Cmd {
	return l.form.Init()
}

func (l loginModel) update(msg tea.Msg) (loginModel, tea.Cmd) {
	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	if l.form.State == huh.StateCompleted {
		session, err := l.auth.Login(*l.email, *l.passwd)
		if err != nil {
			l.failure = err.Error()
			*l.passwd = ""
			l.form = l.newForm()
			return l, l.form.Init()
		}
		l.failure = ""
		return l, func() tea.Msg { return loggedInMsg{email: session.Email} }
	}

	return l, cmd
}

func (l loginModel) view() string {
	title := titleStyle.Render("ClientFlow")
	subtitle := mutedStyle.Render("Sign in to continue")

	var rows []string
	rows = append(rows, title, subtitle, "", l.form.View())
	if l.failure != "" {
		rows = append(rows, errorStyle.Render(l.failure))
	}

	panel := activePanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	if l.width == 0 {
		return panel
	}
	return lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center, panel)
}
