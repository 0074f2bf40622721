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
)

// priorityCycle is what the f key steps through: no filter, then each
// priority in severity order.
var priorityCycle = []model.Priority{"", model.PriorityHigh, model.PriorityMedium, model.PriorityLow}

type conversationsModel struct {
	store  *store.Store
	width  int
	height int

	conversations []model.Conversation
	cursor        int
	viewingDetail bool
	filterIdx     int

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formClient   *string
	formSubject  *string
	formPreview  *string
	formPriority *string
}

func newConversationsModel(s *store.Store) conversationsModel {
	client, subject, preview, priority := "", "", "", string(model.PriorityMedium)
	return conversationsModel{
		store:        s,
		formClient:   &client,
		formSubject:  &subject,
		formPreview:  &preview,
		formPriority: &priority,
	}
}

func (c *conversationsModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

type conversationsDataMsg struct {
	conversations []model.Conversation
}

func (c conversationsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return conversationsDataMsg{conversations: c.store.FilteredConversations()}
	}
}

func (c conversationsModel) update(msg tea.Msg) (conversationsModel, tea.Cmd) {
	if c.formActive && c.form != nil {
		return c.updateForm(msg)
	}

	switch msg := msg.(type) {
	case conversationsDataMsg:
		c.conversations = msg.conversations
		if c.cursor >= len(c.conversations) {
			c.cursor = max(0, len(c.conversations)-1)
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

func (c conversationsModel) updateList(msg tea.KeyMsg) (conversationsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if c.cursor > 0 {
			c.cursor--
		}
	case key.Matches(msg, keys.Down):
		if c.cursor < len(c.conversations)-1 {
			c.cursor++
		}
	case key.Matches(msg, keys.Enter):
		if len(c.conversations) > 0 {
			conv := c.conversations[c.cursor]
			c.viewingDetail = true
			c.store.SelectConversation(conv.ID)
			if conv.Unread {
				c.store.MarkConversationRead(conv.ID)
				return c, c.refresh()
			}
		}
	case key.Matches(msg, keys.New):
		return c.showNewForm()
	case key.Matches(msg, keys.Delete):
		if len(c.conversations) > 0 {
			c.store.DeleteConversation(c.conversations[c.cursor].ID)
			return c, tea.Batch(c.refresh(), status("Conversation deleted"))
		}
	case key.Matches(msg, keys.Read):
		if len(c.conversations) > 0 {
			c.store.MarkConversationRead(c.conversations[c.cursor].ID)
			return c, c.refresh()
		}
	case key.Matches(msg, keys.Unread):
		if len(c.conversations) > 0 {
			c.store.MarkConversationUnread(c.conversations[c.cursor].ID)
			return c, c.refresh()
		}
	case key.Matches(msg, keys.Filter):
		c.filterIdx = (c.filterIdx + 1) % len(priorityCycle)
		f := c.store.ConversationFilters()
		f.Priority = priorityCycle[c.filterIdx]
		c.store.SetConversationFilters(f)
		c.cursor = 0
		return c, c.refresh()
	}
	return c, nil
}

func (c conversationsModel) updateDetail(msg tea.KeyMsg) (conversationsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		c.viewingDetail = false
		c.store.SelectConversation("")
	case key.Matches(msg, keys.Unread):
		if len(c.conversations) > 0 {
			c.store.MarkConversationUnread(c.conversations[c.cursor].ID)
			return c, c.refresh()
		}
	case key.Matches(msg, keys.Summarize):
		if len(c.conversations) > 0 {
			conv := c.conversations[c.cursor]
			if _, ok := c.store.SummaryByConversation(conv.ID); ok {
				return c, status("Already summarized")
			}
			if !c.store.AddSummary(summarizeConversation(conv)) {
				return c, statusError("Could not save summary")
			}
			return c, status("Summary saved")
		}
	}
	return c, nil
}

// summarizeConversation builds a TLDR from the leading sentences of the
// message body, standing in for a real summarizer.
func summarizeConversation(conv model.Conversation) model.EmailSummary {
	body := conv.FullContent
	if body == "" {
		body = conv.Preview
	}

	var tldr []string
	for _, sentence := range strings.Split(body, ".") {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		tldr = append(tldr, sentence)
		if len(tldr) == 3 {
			break
		}
	}
	if len(tldr) == 0 {
		tldr = []string{conv.Subject}
	}

	return model.EmailSummary{
		ID:             seed.NewID(),
		ConversationID: conv.ID,
		OriginalEmail:  body,
		TLDR:           tldr,
		Sentiment:      conv.Sentiment,
		CreatedAt:      time.Now().UTC(),
	}
}

func (c conversationsModel) showNewForm() (conversationsModel, tea.Cmd) {
	*c.formClient = ""
	*c.formSubject = ""
	*c.formPreview = ""
	*c.formPriority = string(model.PriorityMedium)

	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Client").Value(c.formClient),
			huh.NewInput().Title("Subject").Value(c.formSubject),
			huh.NewText().Title("Message").Value(c.formPreview),
			huh.NewSelect[string]().Title("Priority").
				Options(
					huh.NewOption("High", string(model.PriorityHigh)),
					huh.NewOption("Medium", string(model.PriorityMedium)),
					huh.NewOption("Low", string(model.PriorityLow)),
				).Value(c.formPriority),
		),
	).WithShowHelp(true).WithShowErrors(true)

	c.formActive = true
	return c, c.form.Init()
}

func (c conversationsModel) updateForm(msg tea.Msg) (conversationsModel, tea.Cmd) {
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
		if *c.formClient != "" && *c.formSubject != "" {
			now := time.Now().UTC()
			preview := *c.formPreview
			if preview == "" {
				preview = *c.formSubject
			}
			conv := model.Conversation{
				ID:          seed.NewID(),
				ClientID:    c.matchClientID(*c.formClient),
				Client:      *c.formClient,
				Subject:     *c.formSubject,
				Preview:     truncate(preview, 500),
				FullContent: *c.formPreview,
				Timestamp:   "just now",
				CreatedAt:   now,
				UpdatedAt:   now,
				Priority:    model.Priority(*c.formPriority),
				Sentiment:   model.SentimentNeutral,
				Unread:      true,
			}
			if !c.store.AddConversation(conv) {
				return c, statusError("Could not save conversation")
			}
		}
		return c, tea.Batch(c.refresh(), status("Conversation added"))
	}

	return c, cmd
}

// matchClientID links the conversation to an existing client by display
// name when one matches, otherwise the conversation stands alone.
func (c conversationsModel) matchClientID(name string) string {
	for _, cl := range c.store.Clients() {
		if strings.EqualFold(cl.Name, name) {
			return cl.ID
		}
	}
	return seed.NewID()
}

func (c conversationsModel) view() string {
	if c.formActive && c.form != nil {
		title := titleStyle.Render("New Conversation")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", c.form.View())
		return panelStyle.Width(c.width - 4).Render(content)
	}

	if c.viewingDetail {
		return c.renderDetail()
	}
	return c.renderList()
}

func (c conversationsModel) renderList() string {
	w := c.width - 4
	title := titleStyle.Render("Conversations")
	if f := priorityCycle[c.filterIdx]; f != "" {
		title += mutedStyle.Render("  filter: ") + priorityLabel(f)
	}

	if len(c.conversations) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No conversations. Press n to add one."),
		))
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for i, conv := range c.conversations {
		cursor := "  "
		style := normalItemStyle
		if i == c.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		unread := " "
		if conv.Unread {
			unread = highlightStyle.Render("●")
		}
		row := fmt.Sprintf("%s%s %s %s %-18s %-8s %s",
			cursor,
			unread,
			priorityLabel(conv.Priority),
			sentimentDot(conv.Sentiment),
			truncate(conv.Client, 18),
			relativeTime(conv.CreatedAt),
			style.Render(truncate(conv.Subject, max(10, w-50))),
		)
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  d: delete  r/u: read/unread  f: filter  enter: open"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (c conversationsModel) renderDetail() string {
	w := c.width - 4
	if len(c.conversations) == 0 || c.cursor >= len(c.conversations) {
		return panelStyle.Width(w).Render(mutedStyle.Render("Nothing selected"))
	}
	conv := c.conversations[c.cursor]

	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(conv.Subject),
		mutedStyle.Render(fmt.Sprintf("%s · %s · ", conv.Client, relativeTime(conv.CreatedAt)))+
			priorityLabel(conv.Priority)+" "+sentimentDot(conv.Sentiment),
	)

	body := conv.FullContent
	if body == "" {
		body = conv.Preview
	}

	tags := ""
	if len(conv.Tags) > 0 {
		tags = mutedStyle.Render("tags: " + strings.Join(conv.Tags, ", "))
	}

	summary := ""
	if sum, ok := c.store.SummaryByConversation(conv.ID); ok {
		var lines []string
		lines = append(lines, titleStyle.Render("TL;DR"))
		for _, point := range sum.TLDR {
			lines = append(lines, "  • "+point)
		}
		summary = lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		lipgloss.NewStyle().Width(w-6).Render(body),
		"",
		summary,
		tags,
		mutedStyle.Render("s: summarize  u: mark unread  esc: back"),
	))
}
