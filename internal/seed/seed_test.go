package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockCardinality(t *testing.T) {
	d := Mock()
	assert.Len(t, d.Conversations, 3)
	assert.Len(t, d.Clients, 3)
	assert.Len(t, d.ActionItems, 3)
	assert.Len(t, d.Templates, 3)
}

func TestMockEntitiesAreValid(t *testing.T) {
	d := Mock()
	for _, c := range d.Conversations {
		require.NoError(t, c.Validate())
	}
	for _, c := range d.Clients {
		require.NoError(t, c.Validate())
	}
	for _, a := range d.ActionItems {
		require.NoError(t, a.Validate())
	}
}

func TestMockReferencesLineUp(t *testing.T) {
	d := Mock()
	clientIDs := make(map[string]bool)
	for _, c := range d.Clients {
		clientIDs[c.ID] = true
	}
	for _, conv := range d.Conversations {
		assert.True(t, clientIDs[conv.ClientID], "conversation %s references unknown client", conv.Subject)
	}
	convIDs := make(map[string]bool)
	for _, conv := range d.Conversations {
		convIDs[conv.ID] = true
	}
	for _, item := range d.ActionItems {
		assert.True(t, clientIDs[item.ClientID])
		assert.True(t, convIDs[item.ConversationID])
	}
}

func TestMockIDsUnique(t *testing.T) {
	d := Mock()
	seen := make(map[string]bool)
	for _, c := range d.Conversations {
		seen[c.ID] = true
	}
	for _, c := range d.Clients {
		seen[c.ID] = true
	}
	for _, a := range d.ActionItems {
		seen[a.ID] = true
	}
	for _, tp := range d.Templates {
		seen[tp.ID] = true
	}
	assert.Len(t, seen, 12)
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 26) // ULID string form
	assert.NotEqual(t, a, b)
}
