package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankAndPercentiles(t *testing.T) {
	entries := []ScoreEntry{
		{UserID: "a", Score: 100},
		{UserID: "b", Score: 80},
		{UserID: "c", Score: 80},
		{UserID: "d", Score: 50},
	}

	standings := Rank(entries)
	require.Len(t, standings, 4)

	assert.Equal(t, Standing{Rank: 1, Percentile: 100}, standings["a"])
	assert.Equal(t, Standing{Rank: 2, Percentile: 75}, standings["b"])
	assert.Equal(t, Standing{Rank: 3, Percentile: 50}, standings["c"])
	assert.Equal(t, Standing{Rank: 4, Percentile: 25}, standings["d"])
}

// Le classement est ordinal: les ex æquo reçoivent des rangs distincts, dans
// l'ordre d'entrée (le store fournit la population triée par id).
func TestRankTiesKeepInputOrder(t *testing.T) {
	entries := []ScoreEntry{
		{UserID: "u1", Score: 40},
		{UserID: "u2", Score: 40},
		{UserID: "u3", Score: 40},
	}

	standings := Rank(entries)

	assert.Equal(t, 1, standings["u1"].Rank)
	assert.Equal(t, 2, standings["u2"].Rank)
	assert.Equal(t, 3, standings["u3"].Rank)
}

func TestRankAssignsEveryRankOnce(t *testing.T) {
	entries := []ScoreEntry{
		{UserID: "a", Score: 3},
		{UserID: "b", Score: 9},
		{UserID: "c", Score: 9},
		{UserID: "d", Score: 1},
		{UserID: "e", Score: 7},
	}

	standings := Rank(entries)

	seen := make(map[int]bool)
	for _, s := range standings {
		assert.False(t, seen[s.Rank], "rank %d assigned twice", s.Rank)
		seen[s.Rank] = true
		assert.GreaterOrEqual(t, s.Rank, 1)
		assert.LessOrEqual(t, s.Rank, len(entries))
	}
}

func TestRankAbsentUser(t *testing.T) {
	standings := Rank([]ScoreEntry{{UserID: "a", Score: 10}})

	_, ok := standings["ghost"]
	assert.False(t, ok)
	assert.Equal(t, Standing{}, standings["ghost"])
}

func TestSortByScoreDoesNotMutateInput(t *testing.T) {
	entries := []ScoreEntry{
		{UserID: "a", Score: 1},
		{UserID: "b", Score: 9},
	}

	sorted := SortByScore(entries)

	assert.Equal(t, "b", sorted[0].UserID)
	assert.Equal(t, "a", entries[0].UserID)
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		name     string
		rank     int
		n        int
		expected int
	}{
		{"top of population", 1, 4, 100},
		{"bottom of four", 4, 4, 25},
		{"middle rounds", 2, 3, 67},
		{"sole user", 1, 1, 100},
		{"empty population", 1, 0, 100},
		{"bottom of hundred", 100, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Percentile(tt.rank, tt.n))
		})
	}
}
