package scoring

import (
	"context"
	"testing"

	model "github.com/jatinmayekar/terminal-tutor-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreFormula(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		unique    int
		dangerous int
		expected  int
	}{
		{"usage plus variety minus danger", 10, 4, 1, 13},
		{"danger only clamps to zero", 0, 0, 3, 0},
		{"no activity", 0, 0, 0, 0},
		{"all commands distinct", 5, 5, 0, 15},
		{"heavy danger clamps to zero", 100, 10, 100, 0},
		{"exactly cancels out", 3, 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(stubAggregates{
				total:     tt.total,
				dangerous: tt.dangerous,
				unique:    tt.unique,
			}, &memUserStore{})

			score, err := engine.Score(context.Background(), "user-1", "git")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, score)
		})
	}
}

func TestScoreNeverNegative(t *testing.T) {
	engine := NewEngine(stubAggregates{total: 1, dangerous: 50}, &memUserStore{})

	score, err := engine.Score(context.Background(), "user-1", "docker")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, score, 0)
}

func TestScoreFiltersByCategory(t *testing.T) {
	events := &memEventStore{events: []model.CommandEvent{
		event("user-1", "git status", "git", model.RiskSafe),
		event("user-1", "git push", "git", model.RiskSafe),
		event("user-1", "git push", "git", model.RiskSafe),
		event("user-1", "docker ps", "docker", model.RiskSafe),
		event("user-1", "rm -rf /", "git", model.RiskDangerous),
		event("user-2", "git log", "git", model.RiskSafe),
	}}
	engine := NewEngine(events, &memUserStore{})

	// user-1 en git: 4 événements, 3 commandes distinctes, 1 dangereux.
	score, err := engine.Score(context.Background(), "user-1", "git")
	require.NoError(t, err)
	assert.Equal(t, 4+2*3-5*1, score)

	// La même commande chez user-2 ne doit pas déborder sur user-1.
	score, err = engine.Score(context.Background(), "user-2", "git")
	require.NoError(t, err)
	assert.Equal(t, 1+2*1, score)

	score, err = engine.Score(context.Background(), "user-1", "docker")
	require.NoError(t, err)
	assert.Equal(t, 1+2*1, score)
}

func TestScorePropagatesStoreError(t *testing.T) {
	engine := NewEngine(&memEventStore{countErr: errStoreDown}, &memUserStore{})

	_, err := engine.Score(context.Background(), "user-1", "git")
	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)
}

func TestCategoryScoresCoversAllCategories(t *testing.T) {
	events := &memEventStore{events: []model.CommandEvent{
		event("user-1", "git status", "git", model.RiskSafe),
		event("user-1", "kubectl get pods", "k8s", model.RiskSafe),
	}}
	engine := NewEngine(events, &memUserStore{})

	scores, err := engine.CategoryScores(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, scores, 4)

	assert.Equal(t, 3, scores["git"])
	assert.Equal(t, 3, scores["k8s"])
	assert.Equal(t, 0, scores["docker"])
	assert.Equal(t, 0, scores["aws"])
}

func TestTrackedCategory(t *testing.T) {
	engine := NewEngine(&memEventStore{}, &memUserStore{})

	assert.True(t, engine.TrackedCategory("git"))
	assert.True(t, engine.TrackedCategory("k8s"))
	assert.False(t, engine.TrackedCategory("terraform"))
	assert.False(t, engine.TrackedCategory(""))
}
