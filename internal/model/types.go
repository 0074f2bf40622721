package model

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

type HealthStatus string

const (
	HealthExcellent HealthStatus = "excellent"
	HealthGood      HealthStatus = "good"
	HealthAtRisk    HealthStatus = "at-risk"
	HealthCritical  HealthStatus = "critical"
)

func (h HealthStatus) Valid() bool {
	switch h {
	case HealthExcellent, HealthGood, HealthAtRisk, HealthCritical:
		return true
	}
	return false
}

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

func (t Trend) Valid() bool {
	switch t {
	case TrendUp, TrendDown, TrendStable:
		return true
	}
	return false
}

type ActionStatus string

const (
	ActionPending    ActionStatus = "pending"
	ActionInProgress ActionStatus = "in-progress"
	ActionCompleted  ActionStatus = "completed"
	ActionCancelled  ActionStatus = "cancelled"
)

func (a ActionStatus) Valid() bool {
	switch a {
	case ActionPending, ActionInProgress, ActionCompleted, ActionCancelled:
		return true
	}
	return false
}

// Conversation is a tracked client email thread.
type Conversation struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"clientId"`
	Client      string    `json:"client"` // client display name
	Subject     string    `json:"subject"`
	Preview     string    `json:"preview"`
	FullContent string    `json:"fullContent,omitempty"`
	Timestamp   string    `json:"timestamp"` // human label like "2 hours ago"
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Priority    Priority  `json:"priority"`
	Sentiment   Sentiment `json:"sentiment"`
	Unread      bool      `json:"unread"`
	Tags        []string  `json:"tags,omitempty"`
}

type ContactInfo struct {
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Website string `json:"website,omitempty"`
}

type HealthScore struct {
	Score        int          `json:"score"` // 0-100
	Trend        Trend        `json:"trend"`
	Status       HealthStatus `json:"status"`
	LastActivity string       `json:"lastActivity"`
	Issues       int          `json:"issues"`
	LastUpdated  time.Time    `json:"lastUpdated"`
}

type ContractInfo struct {
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Value       float64    `json:"value,omitempty"`
	RenewalDate *time.Time `json:"renewalDate,omitempty"`
}

type Client struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Company      string       `json:"company"`
	ContactInfo  ContactInfo  `json:"contactInfo"`
	HealthScore  HealthScore  `json:"healthScore"`
	ContractInfo ContractInfo `json:"contractInfo"`
	Notes        string       `json:"notes,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

type ActionItem struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description,omitempty"`
	DueDate        *time.Time   `json:"dueDate,omitempty"`
	Priority       Priority     `json:"priority"`
	Status         ActionStatus `json:"status"`
	AssignedTo     string       `json:"assignedTo,omitempty"`
	ConversationID string       `json:"conversationId,omitempty"`
	ClientID       string       `json:"clientId,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	CompletedAt    *time.Time   `json:"completedAt,omitempty"`
}

type EmailSummary struct {
	ID             string       `json:"id"`
	ConversationID string       `json:"conversationId"`
	OriginalEmail  string       `json:"originalEmail"`
	TLDR           []string     `json:"tldr"`
	Actions        []ActionItem `json:"actions"`
	Sentiment      Sentiment    `json:"sentiment"`
	CreatedAt      time.Time    `json:"createdAt"`
	CreatedBy      string       `json:"createdBy,omitempty"`
}

type VariableKind string

const (
	VariableText   VariableKind = "text"
	VariableSelect VariableKind = "select"
)

// TemplateVariable describes one {{name}} placeholder. Kind decides the
// input widget; Options is only meaningful for VariableSelect.
type TemplateVariable struct {
	Name    string       `json:"name"`
	Kind    VariableKind `json:"kind"`
	Options []string     `json:"options,omitempty"`
}

type ResponseTemplate struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Category   string             `json:"category"`
	Subject    string             `json:"subject,omitempty"`
	Content    string             `json:"content"`
	Variables  []TemplateVariable `json:"variables,omitempty"`
	Tags       []string           `json:"tags,omitempty"`
	UsageCount int                `json:"usageCount"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

type Notifications struct {
	Email   bool `json:"email"`
	Desktop bool `json:"desktop"`
	Sound   bool `json:"sound"`
}

type Preferences struct {
	DefaultPriority Priority `json:"defaultPriority"`
	AutoSave        bool     `json:"autoSave"`
	CompactView     bool     `json:"compactView"`
}

type APIKeys struct {
	OpenAI string `json:"openai,omitempty"`
}

// UserSettings is a process-wide singleton.
type UserSettings struct {
	Theme         Theme         `json:"theme"`
	Notifications Notifications `json:"notifications"`
	Preferences   Preferences   `json:"preferences"`
	APIKeys       APIKeys       `json:"apiKeys"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func DefaultSettings() UserSettings {
	return UserSettings{
		Theme: ThemeDark,
		Notifications: Notifications{
			Email:   true,
			Desktop: true,
			Sound:   false,
		},
		Preferences: Preferences{
			DefaultPriority: PriorityMedium,
			AutoSave:        true,
			CompactView:     false,
		},
		UpdatedAt: time.Now().UTC(),
	}
}

// UIState is an ephemeral convenience cache, never authoritative.
type UIState struct {
	SidebarOpen          bool   `json:"sidebarOpen"`
	ActiveSection        string `json:"activeTab"`
	SelectedConversation string `json:"selectedConversation,omitempty"`
	SelectedClient       string `json:"selectedClient,omitempty"`
}

type ConversationFilters struct {
	Client    string
	Priority  Priority
	Sentiment Sentiment
	Unread    *bool
	Tags      []string
}

func (f ConversationFilters) Empty() bool {
	return f.Client == "" && f.Priority == "" && f.Sentiment == "" &&
		f.Unread == nil && len(f.Tags) == 0
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Threshold is the minimum health score a client must have to be included
// when filtering by this risk level.
func (r RiskLevel) Threshold() int {
	switch r {
	case RiskLow:
		return 80
	case RiskMedium:
		return 60
	default:
		return 0
	}
}

type ClientFilters struct {
	Status    HealthStatus
	Trend     Trend
	RiskLevel RiskLevel
}

func (f ClientFilters) Empty() bool {
	return f.Status == "" && f.Trend == "" && f.RiskLevel == ""
}

type ResponseTimeStat struct {
	Avg   float64 `json:"avg"` // hours
	Trend Trend   `json:"trend"`
}

type DashboardStats struct {
	TotalConversations int              `json:"totalConversations"`
	UnreadCount        int              `json:"unreadCount"`
	ActiveClients      int              `json:"activeClients"`
	AtRiskClients      int              `json:"atRiskClients"`
	AvgHealthScore     int              `json:"avgHealthScore"`
	PendingActions     int              `json:"pendingActions"`
	CompletedActions   int              `json:"completedActions"`
	ResponseTime       ResponseTimeStat `json:"responseTime"`
}
