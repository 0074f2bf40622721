package model

import "time"

// Patch types carry partial updates: nil fields are left untouched.
// UpdatedAt stamping is the repository's job, not the patch's.

type ConversationPatch struct {
	ClientID    *string
	Client      *string
	Subject     *string
	Preview     *string
	FullContent *string
	Timestamp   *string
	Priority    *Priority
	Sentiment   *Sentiment
	Unread      *bool
	Tags        *[]string
}

func (p ConversationPatch) Apply(c *Conversation) {
	if p.ClientID != nil {
		c.ClientID = *p.ClientID
	}
	if p.Client != nil {
		c.Client = *p.Client
	}
	if p.Subject != nil {
		c.Subject = *p.Subject
	}
	if p.Preview != nil {
		c.Preview = *p.Preview
	}
	if p.FullContent != nil {
		c.FullContent = *p.FullContent
	}
	if p.Timestamp != nil {
		c.Timestamp = *p.Timestamp
	}
	if p.Priority != nil {
		c.Priority = *p.Priority
	}
	if p.Sentiment != nil {
		c.Sentiment = *p.Sentiment
	}
	if p.Unread != nil {
		c.Unread = *p.Unread
	}
	if p.Tags != nil {
		c.Tags = *p.Tags
	}
}

type ClientPatch struct {
	Name         *string
	Email        *string
	Company      *string
	ContactInfo  *ContactInfo
	ContractInfo *ContractInfo
	Notes        *string
}

func (p ClientPatch) Apply(c *Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Company != nil {
		c.Company = *p.Company
	}
	if p.ContactInfo != nil {
		c.ContactInfo = *p.ContactInfo
	}
	if p.ContractInfo != nil {
		c.ContractInfo = *p.ContractInfo
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
}

// HealthPatch updates the health sub-record. When Score changes and Status
// is not given explicitly, Status is re-derived from the new score.
type HealthPatch struct {
	Score        *int
	Trend        *Trend
	Status       *HealthStatus
	LastActivity *string
	Issues       *int
}

func (p HealthPatch) Apply(h *HealthScore) {
	if p.Score != nil {
		h.Score = *p.Score
		if p.Status == nil {
			h.Status = StatusForScore(*p.Score)
		}
	}
	if p.Trend != nil {
		h.Trend = *p.Trend
	}
	if p.Status != nil {
		h.Status = *p.Status
	}
	if p.LastActivity != nil {
		h.LastActivity = *p.LastActivity
	}
	if p.Issues != nil {
		h.Issues = *p.Issues
	}
	h.LastUpdated = time.Now().UTC()
}

type ActionItemPatch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *Priority
	Status      *ActionStatus
	AssignedTo  *string
	CompletedAt *time.Time
}

func (p ActionItemPatch) Apply(a *ActionItem) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.DueDate != nil {
		a.DueDate = p.DueDate
	}
	if p.Priority != nil {
		a.Priority = *p.Priority
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.AssignedTo != nil {
		a.AssignedTo = *p.AssignedTo
	}
	if p.CompletedAt != nil {
		a.CompletedAt = p.CompletedAt
	}
}

type TemplatePatch struct {
	Name       *string
	Category   *string
	Subject    *string
	Content    *string
	Variables  *[]TemplateVariable
	Tags       *[]string
	UsageCount *int
}

func (p TemplatePatch) Apply(t *ResponseTemplate) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Subject != nil {
		t.Subject = *p.Subject
	}
	if p.Content != nil {
		t.Content = *p.Content
	}
	if p.Variables != nil {
		t.Variables = *p.Variables
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}
	if p.UsageCount != nil {
		t.UsageCount = *p.UsageCount
	}
}

type SettingsPatch struct {
	Theme         *Theme
	Notifications *Notifications
	Preferences   *Preferences
	APIKeys       *APIKeys
}

func (p SettingsPatch) Apply(s *UserSettings) {
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
	if p.Preferences != nil {
		s.Preferences = *p.Preferences
	}
	if p.APIKeys != nil {
		s.APIKeys = *p.APIKeys
	}
	s.UpdatedAt = time.Now().UTC()
}
