package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/jatinmayekar/terminal-tutor-backend/internal/middleware"
	"github.com/jatinmayekar/terminal-tutor-backend/internal/scoring"
	"github.com/jatinmayekar/terminal-tutor-backend/internal/utils"
)

// Budget de la persistance d'instantané lancée hors requête.
const snapshotTimeout = 10 * time.Second

// GetLeaderboard renvoie le top-N anonymisé plus le résumé du demandeur.
// Fonctionnalité Premium. La catégorie est un filtre opaque: toute valeur
// est acceptée, seule la population des scores change.
func GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if !user.HasAccess {
		utils.UpgradeRequired(w, "Leaderboard access requires Premium")
		return
	}

	query := r.URL.Query()
	category := strings.ToLower(strings.TrimSpace(query.Get("category")))
	limit := utils.QueryInt(query, "limit", scoring.DefaultLeaderboardLimit)

	view, err := engine.AssembleLeaderboard(r.Context(), user.ID, category, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not build leaderboard", err)
		return
	}

	// Persistance de l'instantané hors du chemin de réponse: goroutine
	// détachée avec son propre contexte, échec loggé et avalé dans
	// PersistSnapshot. La vue renvoyée ne dépend pas de cette écriture.
	go func(userID string, scores map[string]int, rank int) {
		ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
		defer cancel()
		engine.PersistSnapshot(ctx, userID, scores, rank)
	}(user.ID, view.CurrentUser.CategoryScores, view.CurrentUser.Rank)

	utils.Success(w, view)
}

// RecalculateLeaderboard recalcule scores et rangs de toute la population.
// Opération de maintenance, déclenchée périodiquement; toute session valide
// suffit pour l'instant.
func RecalculateLeaderboard(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.GetUserFromContext(r); err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := engine.RecalculateAll(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not recalculate leaderboard", err)
		return
	}

	utils.Success(w, result)
}
