package scoring

import (
	"context"
	"errors"
	"sort"

	model "github.com/jatinmayekar/terminal-tutor-backend/internal/models"
)

var errStoreDown = errors.New("store unavailable")

// stubAggregates renvoie des agrégats fixés, pour tester la formule de
// score sans matérialiser d'événements.
type stubAggregates struct {
	total     int
	dangerous int
	unique    int
}

func (s stubAggregates) CountEvents(_ context.Context, f Filter) (int, error) {
	if f.RiskLevel == model.RiskDangerous {
		return s.dangerous, nil
	}
	return s.total, nil
}

func (s stubAggregates) DistinctCommands(_ context.Context, _ Filter) ([]string, error) {
	return make([]string, s.unique), nil
}

func (s stubAggregates) ListActiveUsers(_ context.Context) ([]ActiveUser, error) {
	return nil, nil
}

// memEventStore rejoue les requêtes d'agrégats sur une tranche en mémoire,
// avec la même sémantique de filtre que le store Postgres.
type memEventStore struct {
	events    []model.CommandEvent
	users     []ActiveUser
	countErr  error
	activeErr error
}

func matches(ev model.CommandEvent, f Filter) bool {
	if ev.UserID != f.UserID {
		return false
	}
	if f.Category != "" && ev.Category != f.Category {
		return false
	}
	if f.RiskLevel != "" && ev.RiskLevel != f.RiskLevel {
		return false
	}
	return true
}

func (m *memEventStore) CountEvents(_ context.Context, f Filter) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	count := 0
	for _, ev := range m.events {
		if matches(ev, f) {
			count++
		}
	}
	return count, nil
}

func (m *memEventStore) DistinctCommands(_ context.Context, f Filter) ([]string, error) {
	seen := make(map[string]bool)
	for _, ev := range m.events {
		if matches(ev, f) {
			seen[ev.Command] = true
		}
	}
	commands := make([]string, 0, len(seen))
	for command := range seen {
		commands = append(commands, command)
	}
	return commands, nil
}

func (m *memEventStore) ListActiveUsers(_ context.Context) ([]ActiveUser, error) {
	if m.activeErr != nil {
		return nil, m.activeErr
	}
	return m.users, nil
}

// memUserStore capture les écritures dénormalisées du moteur.
type memUserStore struct {
	scores  map[string]map[string]int
	ranks   map[string]int
	failFor map[string]bool // SaveCategoryScores échoue pour ces utilisateurs
	rankErr error
	listErr error
}

func (m *memUserStore) SaveCategoryScores(_ context.Context, userID string, scores map[string]int) error {
	if m.failFor[userID] {
		return errStoreDown
	}
	if m.scores == nil {
		m.scores = make(map[string]map[string]int)
	}
	saved := make(map[string]int, len(scores))
	for k, v := range scores {
		saved[k] = v
	}
	m.scores[userID] = saved
	return nil
}

func (m *memUserStore) SaveOverallRank(_ context.Context, userID string, rank int) error {
	if m.rankErr != nil {
		return m.rankErr
	}
	if m.ranks == nil {
		m.ranks = make(map[string]int)
	}
	m.ranks[userID] = rank
	return nil
}

func (m *memUserStore) ListCategoryScores(_ context.Context) ([]UserScores, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	ids := make([]string, 0, len(m.scores))
	for id := range m.scores {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	all := make([]UserScores, 0, len(ids))
	for _, id := range ids {
		all = append(all, UserScores{UserID: id, Scores: m.scores[id]})
	}
	return all, nil
}

func event(userID, command, category, riskLevel string) model.CommandEvent {
	return model.CommandEvent{
		UserID:          userID,
		Command:         command,
		Category:        category,
		RiskLevel:       riskLevel,
		InteractionType: model.InteractionPrediction,
	}
}
