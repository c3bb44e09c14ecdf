package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	event, ok := SyncedCommand{
		Command:         "  git push --force  ",
		Category:        "Git",
		RiskLevel:       RiskCaution,
		InteractionType: InteractionSuggestion,
		Executed:        true,
	}.Normalize("user-1", now)

	require.True(t, ok)
	assert.Equal(t, "user-1", event.UserID)
	assert.Equal(t, "git push --force", event.Command)
	assert.Equal(t, "git", event.Category)
	assert.Equal(t, RiskCaution, event.RiskLevel)
	assert.Equal(t, InteractionSuggestion, event.InteractionType)
	assert.True(t, event.Executed)
	assert.Equal(t, now, event.CreatedAt)
}

func TestNormalizeDefaults(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	event, ok := SyncedCommand{Command: "docker ps", Category: "docker"}.Normalize("user-1", now)

	require.True(t, ok)
	assert.Equal(t, RiskSafe, event.RiskLevel)
	assert.Equal(t, InteractionPrediction, event.InteractionType)
	assert.False(t, event.Executed)
	assert.Equal(t, now, event.CreatedAt)
}

func TestNormalizeKeepsClientTimestamp(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	clientTime := now.Add(-3 * time.Hour)

	event, ok := SyncedCommand{
		Command:   "aws s3 ls",
		Category:  "aws",
		Timestamp: &clientTime,
	}.Normalize("user-1", now)

	require.True(t, ok)
	assert.Equal(t, clientTime, event.CreatedAt)
}

func TestNormalizeRejectsInvalidEntries(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		input SyncedCommand
	}{
		{"empty command", SyncedCommand{Command: "   ", Category: "git"}},
		{"empty category", SyncedCommand{Command: "git status", Category: ""}},
		{"unknown risk level", SyncedCommand{Command: "git status", Category: "git", RiskLevel: "lethal"}},
		{"unknown interaction type", SyncedCommand{Command: "git status", Category: "git", InteractionType: "telepathy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tt.input.Normalize("user-1", now)
			assert.False(t, ok)
		})
	}
}

func TestValidEnums(t *testing.T) {
	assert.True(t, ValidRiskLevel(RiskSafe))
	assert.True(t, ValidRiskLevel(RiskDangerous))
	assert.False(t, ValidRiskLevel("SAFE"))

	assert.True(t, ValidInteractionType(InteractionAskMode))
	assert.False(t, ValidInteractionType("ask-mode"))
}
