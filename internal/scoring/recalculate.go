package scoring

import (
	"context"
	"fmt"

	"github.com/jatinmayekar/terminal-tutor-backend/internal/logger"
)

// RecalcResult est le bilan d'un recalcul global.
type RecalcResult struct {
	UsersUpdated int `json:"usersUpdated"`
	TotalUsers   int `json:"totalUsers"`
}

// RecalculateAll recalcule les scores par catégorie de toute la population
// active, puis réattribue les rangs globaux dans une seconde passe qui relit
// les scores persistés et les classe par total décroissant.
//
// Aucune isolation transactionnelle n'entoure les deux passes: si des écritures
// concurrentes arrivent pendant le job, le rang est un instantané best-effort.
// Un échec sur un utilisateur est loggé et ignoré, le job continue;
// UsersUpdated ne compte que les succès. Le contexte est vérifié entre chaque
// utilisateur pour permettre l'annulation d'un job long.
func (e *Engine) RecalculateAll(ctx context.Context) (RecalcResult, error) {
	users, err := e.Events.ListActiveUsers(ctx)
	if err != nil {
		return RecalcResult{}, fmt.Errorf("list active users: %w", err)
	}

	updated := 0
	for _, u := range users {
		if err := ctx.Err(); err != nil {
			return RecalcResult{UsersUpdated: updated, TotalUsers: len(users)}, err
		}

		scores, err := e.CategoryScores(ctx, u.UserID)
		if err != nil {
			logger.Warning("recalculation skipped for user %s: %v", u.UserID, err)
			continue
		}
		if err := e.Users.SaveCategoryScores(ctx, u.UserID, scores); err != nil {
			logger.Warning("category scores not persisted for user %s: %v", u.UserID, err)
			continue
		}
		updated++
	}

	// Seconde passe: relire ce qui vient d'être écrit et classer par somme
	// des catégories fixes. Égalités départagées par l'ordre du store (id).
	persisted, err := e.Users.ListCategoryScores(ctx)
	if err != nil {
		return RecalcResult{UsersUpdated: updated}, fmt.Errorf("list category scores: %w", err)
	}

	totals := make([]ScoreEntry, len(persisted))
	for i, p := range persisted {
		total := 0
		for _, category := range e.Categories {
			total += p.Scores[category]
		}
		totals[i] = ScoreEntry{UserID: p.UserID, Score: total}
	}
	sorted := SortByScore(totals)

	for i := range sorted {
		if err := ctx.Err(); err != nil {
			return RecalcResult{UsersUpdated: updated, TotalUsers: len(sorted)}, err
		}
		if err := e.Users.SaveOverallRank(ctx, sorted[i].UserID, i+1); err != nil {
			logger.Warning("overall rank not persisted for user %s: %v", sorted[i].UserID, err)
		}
	}

	return RecalcResult{UsersUpdated: updated, TotalUsers: len(sorted)}, nil
}
