package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/clientflow/internal/model"
)

func sampleClients() []model.Client {
	now := time.Now().UTC()
	return []model.Client{
		{
			ID:      "c1",
			Name:    "Acme Corp",
			Email:   "john@acme.com",
			Company: "Acme Corp",
			HealthScore: model.HealthScore{
				Score:        45,
				Trend:        model.TrendDown,
				Status:       model.HealthAtRisk,
				LastActivity: "2 hours ago",
				Issues:       3,
				LastUpdated:  now,
			},
			ContractInfo: model.ContractInfo{Value: 120000},
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:      "c2",
			Name:    "Global Systems",
			Email:   "michael@globalsys.com",
			Company: "Global Systems",
			HealthScore: model.HealthScore{
				Score:       92,
				Trend:       model.TrendUp,
				Status:      model.HealthExcellent,
				LastUpdated: now,
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func sampleConversations() []model.Conversation {
	now := time.Now().UTC()
	return []model.Conversation{
		{
			ID:        "v1",
			ClientID:  "c1",
			Client:    "Acme Corp",
			Subject:   "Urgent: outage",
			Preview:   "We are seeing errors",
			Priority:  model.PriorityHigh,
			Sentiment: model.SentimentNegative,
			Unread:    true,
			Tags:      []string{"urgent", "technical"},
			CreatedAt: now.Add(-time.Hour),
			UpdatedAt: now,
		},
	}
}

// ============================================================
// CSV
// ============================================================

func TestClientsToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clients.csv")
	require.NoError(t, ClientsToCSV(sampleClients(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 clients

	assert.Equal(t, "ID", records[0][0])
	assert.Equal(t, "Acme Corp", records[1][1])
	assert.Equal(t, "45", records[1][4])
	assert.Equal(t, "at-risk", records[1][5])
	assert.Equal(t, "120000.00", records[1][9])
	// No contract means the value column stays empty.
	assert.Equal(t, "", records[2][9])
}

func TestConversationsToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conversations.csv")
	require.NoError(t, ConversationsToCSV(sampleConversations(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Urgent: outage", records[1][2])
	assert.Equal(t, "high", records[1][3])
	assert.Equal(t, "true", records[1][5])
	assert.Equal(t, "urgent;technical", records[1][7])
}

func TestCSVEmptyInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, ClientsToCSV(nil, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1) // header only
}

// ============================================================
// JSON
// ============================================================

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	snap := Snapshot{
		SchemaVersion: 1,
		Conversations: sampleConversations(),
		Clients:       sampleClients(),
		Settings:      model.DefaultSettings(),
	}
	require.NoError(t, ToJSON(snap, path))

	got, err := FromJSON(path)
	require.NoError(t, err)
	assert.False(t, got.ExportedAt.IsZero())
	assert.Equal(t, 1, got.SchemaVersion)
	require.Len(t, got.Clients, 2)
	assert.Equal(t, "Acme Corp", got.Clients[0].Name)
	require.Len(t, got.Conversations, 1)
	assert.Equal(t, model.PriorityHigh, got.Conversations[0].Priority)
	assert.Equal(t, model.ThemeDark, got.Settings.Theme)
}

func TestFromJSONMissingFile(t *testing.T) {
	_, err := FromJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestFromJSONMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := FromJSON(path)
	assert.Error(t, err)
}
