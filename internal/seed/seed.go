// Package seed generates the fixture dataset used to populate an empty
// store on first run.
package seed

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/sadopc/clientflow/internal/model"
)

// Dataset is one complete bootstrap payload.
type Dataset struct {
	Conversations []model.Conversation
	Clients       []model.Client
	ActionItems   []model.ActionItem
	Templates     []model.ResponseTemplate
}

// NewID returns a sortable identifier built from the current time plus
// random entropy.
func NewID() string {
	return ulid.Make().String()
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

// Mock builds the fixed dataset: 3 conversations, 3 clients, 3 action
// items, 3 templates. Field values are deterministic; identifiers and
// relative timestamps are computed at generation time. Callers guard
// against seeding over existing data — the generator itself does not.
func Mock() Dataset {
	now := time.Now().UTC()

	acmeID := NewID()
	techstartID := NewID()
	globalID := NewID()

	clients := []model.Client{
		{
			ID:      acmeID,
			Name:    "John Smith",
			Email:   "john.smith@acmecorp.com",
			Company: "Acme Corp",
			ContactInfo: model.ContactInfo{
				Phone:   "+1 (555) 123-4567",
				Website: "https://acmecorp.com",
			},
			HealthScore: model.HealthScore{
				Score:        45,
				Trend:        model.TrendDown,
				Status:       model.HealthAtRisk,
				LastActivity: "2 hours ago",
				Issues:       3,
				LastUpdated:  now,
			},
			ContractInfo: model.ContractInfo{
				StartDate:   date(2023, time.January, 15),
				EndDate:     date(2024, time.January, 15),
				Value:       120000,
				RenewalDate: date(2024, time.January, 15),
			},
			Notes:     "Large enterprise client with complex requirements. Recently expressed concerns about timeline delays.",
			CreatedAt: *date(2023, time.January, 15),
			UpdatedAt: now,
		},
		{
			ID:      techstartID,
			Name:    "Sarah Johnson",
			Email:   "sarah.johnson@techstart.io",
			Company: "TechStart Inc",
			ContactInfo: model.ContactInfo{
				Phone:   "+1 (555) 987-6543",
				Website: "https://techstart.io",
			},
			HealthScore: model.HealthScore{
				Score:        78,
				Trend:        model.TrendStable,
				Status:       model.HealthGood,
				LastActivity: "5 hours ago",
				Issues:       1,
				LastUpdated:  now,
			},
			ContractInfo: model.ContractInfo{
				StartDate: date(2023, time.June, 1),
				EndDate:   date(2024, time.June, 1),
				Value:     50000,
			},
			Notes:     "Growing startup with strong technical team. Occasional support requests but generally self-sufficient.",
			CreatedAt: *date(2023, time.June, 1),
			UpdatedAt: now,
		},
		{
			ID:      globalID,
			Name:    "Michael Chen",
			Email:   "michael.chen@globalsys.com",
			Company: "Global Systems",
			ContactInfo: model.ContactInfo{
				Phone:   "+1 (555) 456-7890",
				Website: "https://globalsys.com",
			},
			HealthScore: model.HealthScore{
				Score:        92,
				Trend:        model.TrendUp,
				Status:       model.HealthExcellent,
				LastActivity: "1 day ago",
				Issues:       0,
				LastUpdated:  now,
			},
			ContractInfo: model.ContractInfo{
				StartDate:   date(2022, time.March, 1),
				EndDate:     date(2025, time.March, 1),
				Value:       300000,
				RenewalDate: date(2024, time.December, 1),
			},
			Notes:     "Long-term strategic client with excellent relationship. Considering expansion of services.",
			CreatedAt: *date(2022, time.March, 1),
			UpdatedAt: now,
		},
	}

	conversations := []model.Conversation{
		{
			ID:       NewID(),
			ClientID: acmeID,
			Client:   "Acme Corp",
			Subject:  "Q4 Feature Rollout Concerns",
			Preview:  "Hi team, I wanted to follow up on our discussion about the feature delays affecting our Q4 launch timeline...",
			FullContent: `Hi ClientFlow Team,

I wanted to follow up on our discussion about the feature delays affecting our Q4 launch timeline. Our engineering team is concerned about the impact on our customer commitments.

Could we schedule a call to discuss:
1. Updated timeline with realistic milestones
2. Compensation for the delays
3. Priority adjustments to ensure Q4 success

We're evaluating alternatives but prefer to work with you on a solution.

Best regards,
John Smith, CTO
Acme Corp`,
			Timestamp: "2 hours ago",
			CreatedAt: now.Add(-2 * time.Hour),
			UpdatedAt: now.Add(-2 * time.Hour),
			Priority:  model.PriorityHigh,
			Sentiment: model.SentimentNegative,
			Unread:    true,
			Tags:      []string{"urgent", "timeline", "compensation"},
		},
		{
			ID:       NewID(),
			ClientID: techstartID,
			Client:   "TechStart Inc",
			Subject:  "Integration Support Request",
			Preview:  "We are experiencing some issues with the API integration and need assistance with debugging...",
			FullContent: `Hello Support Team,

We are experiencing some issues with the API integration and need assistance with debugging the authentication flow.

Issue details:
- API calls returning 401 errors
- Token refresh seems to be failing
- Documentation suggests different approach

Can someone help us troubleshoot this week?

Thanks,
Sarah Johnson
Lead Developer, TechStart Inc`,
			Timestamp: "5 hours ago",
			CreatedAt: now.Add(-5 * time.Hour),
			UpdatedAt: now.Add(-5 * time.Hour),
			Priority:  model.PriorityMedium,
			Sentiment: model.SentimentNeutral,
			Unread:    true,
			Tags:      []string{"support", "api", "integration"},
		},
		{
			ID:       NewID(),
			ClientID: globalID,
			Client:   "Global Systems",
			Subject:  "Monthly Check-in",
			Preview:  "Hope you are doing well! I wanted to schedule our monthly review to discuss progress and upcoming initiatives...",
			FullContent: `Hi there,

Hope you are doing well! I wanted to schedule our monthly review to discuss progress and upcoming initiatives.

Our team has been very happy with the recent improvements and would like to explore expanding our usage.

Let me know your availability for next week.

Best,
Michael Chen
VP Operations, Global Systems`,
			Timestamp: "1 day ago",
			CreatedAt: now.Add(-24 * time.Hour),
			UpdatedAt: now.Add(-24 * time.Hour),
			Priority:  model.PriorityLow,
			Sentiment: model.SentimentPositive,
			Unread:    false,
			Tags:      []string{"check-in", "expansion"},
		},
	}

	tomorrow := now.Add(24 * time.Hour)
	dayAfter := now.Add(2 * 24 * time.Hour)
	nextWeek := now.Add(7 * 24 * time.Hour)

	actionItems := []model.ActionItem{
		{
			ID:             NewID(),
			Title:          "Schedule emergency call with Acme Corp",
			Description:    "Discuss timeline delays and compensation options",
			DueDate:        &tomorrow,
			Priority:       model.PriorityHigh,
			Status:         model.ActionPending,
			AssignedTo:     "CSM Team",
			ConversationID: conversations[0].ID,
			ClientID:       acmeID,
			CreatedAt:      now.Add(-2 * time.Hour),
		},
		{
			ID:             NewID(),
			Title:          "Provide API integration support to TechStart",
			Description:    "Help debug authentication flow issues",
			DueDate:        &dayAfter,
			Priority:       model.PriorityMedium,
			Status:         model.ActionInProgress,
			AssignedTo:     "Support Team",
			ConversationID: conversations[1].ID,
			ClientID:       techstartID,
			CreatedAt:      now.Add(-5 * time.Hour),
		},
		{
			ID:             NewID(),
			Title:          "Prepare monthly review for Global Systems",
			Description:    "Compile performance metrics and expansion proposals",
			DueDate:        &nextWeek,
			Priority:       model.PriorityLow,
			Status:         model.ActionPending,
			AssignedTo:     "Account Manager",
			ConversationID: conversations[2].ID,
			ClientID:       globalID,
			CreatedAt:      now.Add(-24 * time.Hour),
		},
	}

	templates := []model.ResponseTemplate{
		{
			ID:       NewID(),
			Name:     "Timeline Delay Acknowledgment",
			Category: "Issue Resolution",
			Subject:  "Re: Timeline Concerns - Let's Schedule a Call",
			Content: `Hi {{clientName}},

Thank you for reaching out about the timeline concerns. I completely understand your frustration, and I want to address this immediately.

I'd like to schedule a call to discuss:
- Revised timeline with realistic milestones
- Compensation options for the delays
- Steps we're taking to prevent future delays

Are you available for a 30-minute call {{timeframe}}?

Best regards,
{{yourName}}`,
			Variables: []model.TemplateVariable{
				{Name: "clientName", Kind: model.VariableText},
				{Name: "timeframe", Kind: model.VariableSelect, Options: []string{"today", "tomorrow", "this week", "next week"}},
				{Name: "yourName", Kind: model.VariableText},
			},
			Tags:       []string{"delay", "timeline", "urgent"},
			UsageCount: 5,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:       NewID(),
			Name:     "Technical Support Response",
			Category: "Support",
			Subject:  "Re: {{originalSubject}} - Support Team Response",
			Content: `Hi {{clientName}},

Thanks for reaching out about the technical issue. Our support team is here to help!

I've reviewed your case and {{initialAssessment}}.

Next steps:
1. {{nextStep1}}
2. {{nextStep2}}
3. I'll follow up with you by {{followUpDate}}

If you need immediate assistance, please don't hesitate to call our support line.

Best,
{{supportAgent}}`,
			Variables: []model.TemplateVariable{
				{Name: "clientName", Kind: model.VariableText},
				{Name: "originalSubject", Kind: model.VariableText},
				{Name: "initialAssessment", Kind: model.VariableText},
				{Name: "nextStep1", Kind: model.VariableText},
				{Name: "nextStep2", Kind: model.VariableText},
				{Name: "followUpDate", Kind: model.VariableText},
				{Name: "supportAgent", Kind: model.VariableText},
			},
			Tags:       []string{"support", "technical", "troubleshooting"},
			UsageCount: 12,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:       NewID(),
			Name:     "Monthly Check-in Response",
			Category: "Relationship Management",
			Subject:  "Re: Monthly Check-in - Looking Forward to Our Discussion",
			Content: `Hi {{clientName}},

Great to hear from you! I'm excited to schedule our monthly review.

I have {{availability}} available next week. Please let me know what works best for you.

I'll prepare an update on:
- Recent performance metrics
- Upcoming feature releases
- Expansion opportunities we discussed

Looking forward to our conversation!

Best,
{{accountManager}}`,
			Variables: []model.TemplateVariable{
				{Name: "clientName", Kind: model.VariableText},
				{Name: "availability", Kind: model.VariableSelect, Options: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}},
				{Name: "accountManager", Kind: model.VariableText},
			},
			Tags:       []string{"check-in", "relationship", "monthly"},
			UsageCount: 8,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}

	return Dataset{
		Conversations: conversations,
		Clients:       clients,
		ActionItems:   actionItems,
		Templates:     templates,
	}
}
