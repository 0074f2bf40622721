package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/clientflow/internal/model"
	"github.com/sadopc/clientflow/internal/store"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	settings   model.UserSettings
	formActive bool
	form       *huh.Form
	formType   string // "edit" or "reset"

	// Form values as pointers (survive value copies)
	theme           *string
	emailNotif      *bool
	desktopNotif    *bool
	soundNotif      *bool
	defaultPriority *string
	autoSave        *bool
	compactView     *bool
	confirmReset    *bool
}

func newSettingsModel(s *store.Store) settingsModel {
	theme, priority := "", ""
	email, desktop, sound, autosave, compact, reset := false, false, false, false, false, false
	return settingsModel{
		store:           s,
		theme:           &theme,
		emailNotif:      &email,
		desktopNotif:    &desktop,
		soundNotif:      &sound,
		defaultPriority: &priority,
		autoSave:        &autosave,
		compactView:     &compact,
		confirmReset:    &reset,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings model.UserSettings
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return settingsDataMsg{settings: s.store.Settings()}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		case key.Matches(msg, keys.Delete):
			return s.showResetForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	cur := s.store.Settings()
	*s.theme = string(cur.Theme)
	*s.emailNotif = cur.Notifications.Email
	*s.desktopNotif = cur.Notifications.Desktop
	*s.soundNotif = cur.Notifications.Sound
	*s.defaultPriority = string(cur.Preferences.DefaultPriority)
	*s.autoSave = cur.Preferences.AutoSave
	*s.compactView = cur.Preferences.CompactView
	s.formType = "edit"

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Theme").
				Options(
					huh.NewOption("Dark", string(model.ThemeDark)),
					huh.NewOption("Light", string(model.ThemeLight)),
					huh.NewOption("System", string(model.ThemeSystem)),
				).Value(s.theme),
			huh.NewSelect[string]().Title("Default priority").
				Options(
					huh.NewOption("High", string(model.PriorityHigh)),
					huh.NewOption("Medium", string(model.PriorityMedium)),
					huh.NewOption("Low", string(model.PriorityLow)),
				).Value(s.defaultPriority),
			huh.NewConfirm().Title("Auto-save").Value(s.autoSave),
			huh.NewConfirm().Title("Compact view").Value(s.compactView),
		).Title("Preferences"),
		huh.NewGroup(
			huh.NewConfirm().Title("Email notifications").Value(s.emailNotif),
			huh.NewConfirm().Title("Desktop notifications").Value(s.desktopNotif),
			huh.NewConfirm().Title("Sound").Value(s.soundNotif),
		).Title("Notifications"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) showResetForm() (settingsModel, tea.Cmd) {
	*s.confirmReset = false
	s.formType = "reset"

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete ALL data?").
				Description("Conversations, clients, action items and templates will be removed. This cannot be undone.").
				Affirmative("Delete everything").
				Negative("Cancel").
				Value(s.confirmReset),
		),
	).WithShowHelp(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		switch s.formType {
		case "edit":
			s.saveSettings()
			return s, tea.Batch(s.refresh(), status("Settings saved"))
		case "reset":
			if *s.confirmReset {
				s.store.ClearAllData()
				return s, tea.Batch(s.refresh(), status("All data cleared"))
			}
			return s, nil
		}
	}

	return s, cmd
}

func (s settingsModel) saveSettings() {
	theme := model.Theme(*s.theme)
	notifications := model.Notifications{
		Email:   *s.emailNotif,
		Desktop: *s.desktopNotif,
		Sound:   *s.soundNotif,
	}
	preferences := model.Preferences{
		DefaultPriority: model.Priority(*s.defaultPriority),
		AutoSave:        *s.autoSave,
		CompactView:     *s.compactView,
	}
	s.store.UpdateSettings(model.SettingsPatch{
		Theme:         &theme,
		Notifications: &notifications,
		Preferences:   &preferences,
	})
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		if s.formType == "reset" {
			title = errorStyle.Render("Reset")
		}
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	onOff := func(b bool) string {
		if b {
			return successStyle.Render("on")
		}
		return mutedStyle.Render("off")
	}

	var rows []string
	rows = append(rows, titleStyle.Render("Settings"))
	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("  %-24s %s", "Theme", highlightStyle.Render(string(s.settings.Theme))))
	rows = append(rows, fmt.Sprintf("  %-24s %s", "Default priority", highlightStyle.Render(string(s.settings.Preferences.DefaultPriority))))
	rows = append(rows, fmt.Sprintf("  %-24s %s", "Auto-save", onOff(s.settings.Preferences.AutoSave)))
	rows = append(rows, fmt.Sprintf("  %-24s %s", "Compact view", onOff(s.settings.Preferences.CompactView)))
	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("  %-24s %s", "Email notifications", onOff(s.settings.Notifications.Email)))
	rows = append(rows, fmt.Sprintf("  %-24s %s", "Desktop notifications", onOff(s.settings.Notifications.Desktop)))
	rows = append(rows, fmt.Sprintf("  %-24s %s", "Sound", onOff(s.settings.Notifications.Sound)))
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: edit  d: clear all data"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
