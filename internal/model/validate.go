package model

import (
	"errors"
	"fmt"
	"strings"
)

// Validation mirrors what the persistence layer enforces on read: records
// that fail are dropped from the decoded collection, not surfaced as errors.

func (c Conversation) Validate() error {
	if c.ID == "" {
		return errors.New("conversation: missing id")
	}
	if c.ClientID == "" {
		return errors.New("conversation: missing client id")
	}
	if c.Client == "" {
		return errors.New("conversation: missing client name")
	}
	if c.Subject == "" || len(c.Subject) > 200 {
		return fmt.Errorf("conversation %s: subject length %d out of range", c.ID, len(c.Subject))
	}
	if c.Preview == "" || len(c.Preview) > 500 {
		return fmt.Errorf("conversation %s: preview length %d out of range", c.ID, len(c.Preview))
	}
	if !c.Priority.Valid() {
		return fmt.Errorf("conversation %s: invalid priority %q", c.ID, c.Priority)
	}
	if !c.Sentiment.Valid() {
		return fmt.Errorf("conversation %s: invalid sentiment %q", c.ID, c.Sentiment)
	}
	if c.UpdatedAt.Before(c.CreatedAt) {
		return fmt.Errorf("conversation %s: updatedAt before createdAt", c.ID)
	}
	return nil
}

func (c Client) Validate() error {
	if c.ID == "" {
		return errors.New("client: missing id")
	}
	if c.Name == "" || len(c.Name) > 100 {
		return fmt.Errorf("client %s: name length %d out of range", c.ID, len(c.Name))
	}
	if !strings.Contains(c.Email, "@") {
		return fmt.Errorf("client %s: invalid email %q", c.ID, c.Email)
	}
	if c.Company == "" || len(c.Company) > 100 {
		return fmt.Errorf("client %s: company length %d out of range", c.ID, len(c.Company))
	}
	if c.HealthScore.Score < 0 || c.HealthScore.Score > 100 {
		return fmt.Errorf("client %s: score %d out of range", c.ID, c.HealthScore.Score)
	}
	if c.HealthScore.Issues < 0 {
		return fmt.Errorf("client %s: negative issue count", c.ID)
	}
	if !c.HealthScore.Trend.Valid() {
		return fmt.Errorf("client %s: invalid trend %q", c.ID, c.HealthScore.Trend)
	}
	if !c.HealthScore.Status.Valid() {
		return fmt.Errorf("client %s: invalid status %q", c.ID, c.HealthScore.Status)
	}
	return nil
}

func (a ActionItem) Validate() error {
	if a.ID == "" {
		return errors.New("action item: missing id")
	}
	if a.Title == "" || len(a.Title) > 200 {
		return fmt.Errorf("action item %s: title length %d out of range", a.ID, len(a.Title))
	}
	if !a.Priority.Valid() {
		return fmt.Errorf("action item %s: invalid priority %q", a.ID, a.Priority)
	}
	if !a.Status.Valid() {
		return fmt.Errorf("action item %s: invalid status %q", a.ID, a.Status)
	}
	return nil
}

func (s UserSettings) Validate() error {
	if !s.Theme.Valid() {
		return fmt.Errorf("settings: invalid theme %q", s.Theme)
	}
	if !s.Preferences.DefaultPriority.Valid() {
		return fmt.Errorf("settings: invalid default priority %q", s.Preferences.DefaultPriority)
	}
	return nil
}
