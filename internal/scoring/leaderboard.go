package scoring

import (
	"context"
	"fmt"

	"github.com/jatinmayekar/terminal-tutor-backend/internal/logger"
	model "github.com/jatinmayekar/terminal-tutor-backend/internal/models"
)

// AnonymousName remplace le nom de toutes les entrées publiques sauf celle
// du demandeur.
const AnonymousName = "Anonymous"

// DefaultLeaderboardLimit est la taille du top-N public par défaut.
const DefaultLeaderboardLimit = 50

// OverallCategory est la valeur affichée quand aucune catégorie n'est demandée.
const OverallCategory = "overall"

// PopulationScores calcule le score de chaque utilisateur actif, dans
// l'ordre retourné par le store (trié par id, ce qui fixe le départage des
// égalités d'une passe à l'autre).
func (e *Engine) PopulationScores(ctx context.Context, category string) ([]ScoreEntry, error) {
	users, err := e.Events.ListActiveUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active users: %w", err)
	}

	entries := make([]ScoreEntry, 0, len(users))
	for _, u := range users {
		score, err := e.Score(ctx, u.UserID, category)
		if err != nil {
			return nil, fmt.Errorf("score for %s: %w", u.UserID, err)
		}
		name := u.Name
		if name == "" {
			name = AnonymousName
		}
		entries = append(entries, ScoreEntry{UserID: u.UserID, Name: name, Score: score})
	}
	return entries, nil
}

// AssembleLeaderboard construit la vue top-N plus le résumé du demandeur.
// Le rang du demandeur se cherche dans la population complète, pas dans la
// tranche affichée: un utilisateur hors du top-N voit quand même son vrai
// rang. Lecture pure; la persistance de l'instantané passe par
// PersistSnapshot, dispatché séparément par l'appelant.
func (e *Engine) AssembleLeaderboard(ctx context.Context, requestingUserID, category string, limit int) (*model.LeaderboardView, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	population, err := e.PopulationScores(ctx, category)
	if err != nil {
		return nil, err
	}
	sorted := SortByScore(population)

	top := sorted
	if len(top) > limit {
		top = top[:limit]
	}

	entries := make([]model.LeaderboardEntry, len(top))
	for i := range top {
		isCurrent := top[i].UserID == requestingUserID
		name := AnonymousName
		if isCurrent {
			name = top[i].Name
		}
		entries[i] = model.LeaderboardEntry{
			Rank:          i + 1,
			Name:          name,
			Score:         top[i].Score,
			IsCurrentUser: isCurrent,
		}
	}

	// Rang 0 / percentile 0 = demandeur non classé (aucun événement).
	var current model.CurrentUserSummary
	for i := range sorted {
		if sorted[i].UserID == requestingUserID {
			current.Rank = i + 1
			current.Score = sorted[i].Score
			current.Percentile = Percentile(current.Rank, len(sorted))
			break
		}
	}

	categoryScores, err := e.CategoryScores(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}
	current.CategoryScores = categoryScores

	viewCategory := category
	if viewCategory == "" {
		viewCategory = OverallCategory
	}

	return &model.LeaderboardView{
		Entries:     entries,
		CurrentUser: current,
		TotalUsers:  len(sorted),
		Category:    viewCategory,
	}, nil
}

// PersistSnapshot écrit les scores par catégorie et le rang global sur la
// fiche utilisateur. Prévu pour tourner en tâche de fond après l'envoi de la
// réponse: tout échec est loggé puis avalé, jamais remonté au chemin de
// lecture. Un rang à 0 (non classé) n'écrase pas le rang persisté.
func (e *Engine) PersistSnapshot(ctx context.Context, userID string, scores map[string]int, overallRank int) {
	if err := e.Users.SaveCategoryScores(ctx, userID, scores); err != nil {
		logger.Warning("leaderboard snapshot not persisted for user %s: %v", userID, err)
		return
	}
	if overallRank > 0 {
		if err := e.Users.SaveOverallRank(ctx, userID, overallRank); err != nil {
			logger.Warning("overall rank not persisted for user %s: %v", userID, err)
		}
	}
}
