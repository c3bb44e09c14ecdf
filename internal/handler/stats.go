package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/jatinmayekar/terminal-tutor-backend/internal/middleware"
	model "github.com/jatinmayekar/terminal-tutor-backend/internal/models"
	"github.com/jatinmayekar/terminal-tutor-backend/internal/scoring"
	"github.com/jatinmayekar/terminal-tutor-backend/internal/store"
	"github.com/jatinmayekar/terminal-tutor-backend/internal/utils"
)

// Nombre de commandes récentes renvoyées par GET /stats.
const recentCommandsLimit = 100

// Taille max de la liste des commandes favorites.
const maxFavoriteCommands = 10

// SyncStats reçoit un lot de commandes du CLI, l'ajoute au journal
// append-only et met à jour les champs dénormalisés de l'utilisateur
// (compteurs, préférences, favoris, série de jours).
//
// Les entrées invalides (command ou category vide, valeur hors énumération)
// sont ignorées silencieusement: le lot ne remonte jamais d'échec partiel.
func SyncStats(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if !user.HasAccess {
		utils.UpgradeRequired(w, "Premium subscription required for cloud sync")
		return
	}

	var payload struct {
		Commands []model.SyncedCommand `json:"commands"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if payload.Commands == nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid request, expected 'commands' array")
		return
	}

	ctx := r.Context()
	now := time.Now()

	validEvents := make([]model.CommandEvent, 0, len(payload.Commands))
	modeCounts := make(map[string]int)
	frequency := make(map[string]int)

	for _, cmd := range payload.Commands {
		event, ok := cmd.Normalize(user.ID, now)
		if !ok {
			continue
		}
		validEvents = append(validEvents, event)

		// Seules les catégories fixes alimentent modePreferences; les autres
		// restent dans le journal brut.
		if engine.TrackedCategory(event.Category) {
			modeCounts[event.Category]++
		}
		frequency[event.Command]++
	}

	if _, err := events.InsertEvents(ctx, validEvents); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not insert events", err)
		return
	}

	streak := scoring.UpdateStreak(user.LearningStreak, user.LastActiveDate, now)
	favorites := scoring.TopCommands(frequency, maxFavoriteCommands)

	if err := users.ApplyActivity(ctx, user.ID, len(validEvents), modeCounts, favorites, streak, now); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			utils.ErrorSimple(w, http.StatusNotFound, "user not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not update user stats", err)
		return
	}

	utils.Success(w, model.SyncResult{
		Synced: len(validEvents),
		Streak: streak,
	})
}

// GetStats renvoie les statistiques dénormalisées de l'utilisateur plus ses
// commandes récentes.
func GetStats(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if !user.HasAccess {
		utils.UpgradeRequired(w, "Premium subscription required")
		return
	}

	recent, err := events.RecentCommands(r.Context(), user.ID, recentCommandsLimit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query recent commands", err)
		return
	}
	if recent == nil {
		recent = []model.CommandEvent{}
	}

	favorites := user.FavoriteCommands
	if favorites == nil {
		favorites = []string{}
	}

	utils.Success(w, model.UserStats{
		CommandUsageCount: user.CommandUsageCount,
		LearningStreak:    user.LearningStreak,
		FavoriteCommands:  favorites,
		ModePreferences:   user.ModePreferences,
		LeaderboardScores: user.LeaderboardScores,
		RecentCommands:    recent,
	})
}
