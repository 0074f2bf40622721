package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/clientflow/internal/model"
	"github.com/sadopc/clientflow/internal/seed"
	"github.com/sadopc/clientflow/internal/store"
	"github.com/sadopc/clientflow/internal/template"
)

type templatesModel struct {
	store  *store.Store
	width  int
	height int

	templates []model.ResponseTemplate
	cursor    int

	formActive bool
	form       *huh.Form
	formType   string // "new" or "fill"

	formName     *string
	formCategory *string
	formSubject  *string
	formContent  *string

	// Fill state: value pointers per placeholder, in template order.
	fillID     string
	fillNames  []string
	fillValues []*string

	previewSubject string
	previewContent string
	showPreview    bool
}

func newTemplatesModel(s *store.Store) templatesModel {
	name, category, subject, content := "", "", "", ""
	return templatesModel{
		store:        s,
		formName:     &name,
		formCategory: &category,
		formSubject:  &subject,
		formContent:  &content,
	}
}

func (t *templatesModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

type templatesDataMsg struct {
	templates []model.ResponseTemplate
}

func (t templatesModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return templatesDataMsg{templates: t.store.Templates()}
	}
}

func (t templatesModel) update(msg tea.Msg) (templatesModel, tea.Cmd) {
	if t.formActive && t.form != nil {
		return t.updateForm(msg)
	}

	switch msg := msg.(type) {
	case templatesDataMsg:
		t.templates = msg.templates
		if t.cursor >= len(t.templates) {
			t.cursor = max(0, len(t.templates)-1)
		}
		return t, nil

	case tea.KeyMsg:
		if t.showPreview {
			if key.Matches(msg, keys.Back) {
				t.showPreview = false
			}
			return t, nil
		}
		switch {
		case key.Matches(msg, keys.Up):
			if t.cursor > 0 {
				t.cursor--
			}
		case key.Matches(msg, keys.Down):
			if t.cursor < len(t.templates)-1 {
				t.cursor++
			}
		case key.Matches(msg, keys.Enter):
			return t.showFillForm()
		case key.Matches(msg, keys.New):
			return t.showNewForm()
		case key.Matches(msg, keys.Delete):
			if len(t.templates) > 0 {
				t.store.DeleteTemplate(t.templates[t.cursor].ID)
				return t, tea.Batch(t.refresh(), status("Template deleted"))
			}
		}
	}
	return t, nil
}

func (t templatesModel) showNewForm() (templatesModel, tea.Cmd) {
	*t.formName = ""
	*t.formCategory = ""
	*t.formSubject = ""
	*t.formContent = ""
	t.formType = "new"

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(t.formName),
			huh.NewInput().Title("Category").Value(t.formCategory),
			huh.NewInput().Title("Subject").Value(t.formSubject),
			huh.NewText().Title("Content ({{placeholders}} allowed)").Value(t.formContent),
		),
	).WithShowHelp(true).WithShowErrors(true)

	t.formActive = true
	return t, t.form.Init()
}

// showFillForm builds one field per placeholder. Declared select
// variables become pickers, everything else is a free-text input.
func (t templatesModel) showFillForm() (templatesModel, tea.Cmd) {
	if len(t.templates) == 0 {
		return t, nil
	}
	tpl := t.templates[t.cursor]
	vars := template.Variables(tpl)
	if len(vars) == 0 {
		// Nothing to fill, render directly.
		t.previewSubject, t.previewContent = template.RenderTemplate(tpl, nil)
		t.showPreview = true
		t.store.IncrementTemplateUsage(tpl.ID)
		return t, t.refresh()
	}

	t.formType = "fill"
	t.fillID = tpl.ID
	t.fillNames = t.fillNames[:0]
	t.fillValues = t.fillValues[:0]

	var fields []huh.Field
	for _, v := range vars {
		value := new(string)
		t.fillNames = append(t.fillNames, v.Name)
		t.fillValues = append(t.fillValues, value)

		if v.Kind == model.VariableSelect && len(v.Options) > 0 {
			*value = v.Options[0]
			opts := make([]huh.Option[string], len(v.Options))
			for i, o := range v.Options {
				opts[i] = huh.NewOption(o, o)
			}
			fields = append(fields, huh.NewSelect[string]().Title(v.Name).Options(opts...).Value(value))
		} else {
			fields = append(fields, huh.NewInput().Title(v.Name).Value(value))
		}
	}

	t.form = huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(true).WithShowErrors(true)
	t.formActive = true
	return t, t.form.Init()
}

func (t templatesModel) updateForm(msg tea.Msg) (templatesModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			t.formActive = false
			t.form = nil
			return t, nil
		}
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	if t.form.State == huh.StateCompleted {
		t.formActive = false
		switch t.formType {
		case "new":
			if *t.formName != "" && *t.formContent != "" {
				now := time.Now().UTC()
				tpl := model.ResponseTemplate{
					ID:        seed.NewID(),
					Name:      *t.formName,
					Category:  *t.formCategory,
					Subject:   *t.formSubject,
					Content:   *t.formContent,
					CreatedAt: now,
					UpdatedAt: now,
				}
				if !t.store.AddTemplate(tpl) {
					return t, statusError("Could not save template")
				}
			}
			return t, tea.Batch(t.refresh(), status("Template added"))
		case "fill":
			values := make(map[string]string, len(t.fillNames))
			for i, name := range t.fillNames {
				values[name] = *t.fillValues[i]
			}
			if tpl, ok := t.store.TemplateByID(t.fillID); ok {
				t.previewSubject, t.previewContent = template.RenderTemplate(tpl, values)
				t.showPreview = true
				t.store.IncrementTemplateUsage(tpl.ID)
			}
			return t, t.refresh()
		}
	}

	return t, cmd
}

func (t templatesModel) view() string {
	w := t.width - 4

	if t.formActive && t.form != nil {
		title := titleStyle.Render("New Template")
		if t.formType == "fill" {
			title = titleStyle.Render("Fill Template")
		}
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", t.form.View())
		return panelStyle.Width(w).Render(content)
	}

	if t.showPreview {
		return t.renderPreview()
	}
	return t.renderList()
}

func (t templatesModel) renderList() string {
	w := t.width - 4
	title := titleStyle.Render("Response Templates")

	if len(t.templates) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No templates. Press n to create one."),
		))
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	header := mutedStyle.Render(fmt.Sprintf("  %-28s %-14s %8s", "Name", "Category", "Used"))
	rows = append(rows, header)

	for i, tpl := range t.templates {
		cursor := "  "
		style := normalItemStyle
		if i == t.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		row := style.Render(fmt.Sprintf("%s%-28s %-14s %8d",
			cursor, truncate(tpl.Name, 28), truncate(tpl.Category, 14), tpl.UsageCount))
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  d: delete  enter: fill & preview"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (t templatesModel) renderPreview() string {
	w := t.width - 4
	var rows []string
	rows = append(rows, titleStyle.Render("Preview"))
	if t.previewSubject != "" {
		rows = append(rows, "")
		rows = append(rows, highlightStyle.Render("Subject: ")+t.previewSubject)
	}
	rows = append(rows, "")
	rows = append(rows, lipgloss.NewStyle().Width(w-6).Render(t.previewContent))
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  esc: back"))
	return activePanelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
