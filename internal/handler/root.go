package handler

import (
	"net/http"

	"github.com/jatinmayekar/terminal-tutor-backend/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "Terminal Tutor API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"auth": []map[string]string{
				{"method": "POST", "path": "/auth/signup", "description": "Inscription utilisateur"},
				{"method": "POST", "path": "/auth/login", "description": "Connexion utilisateur"},
				{"method": "POST", "path": "/auth/logout", "description": "Déconnexion utilisateur"},
			},
			"stats": []map[string]string{
				{"method": "GET", "path": "/stats", "description": "Statistiques de l'utilisateur (Premium)"},
				{"method": "POST", "path": "/stats/sync", "description": "Synchroniser les commandes du CLI (Premium)"},
			},
			"leaderboard": []map[string]string{
				{"method": "GET", "path": "/leaderboard", "description": "Classement global (params: category, limit) (Premium)"},
				{"method": "POST", "path": "/leaderboard/recalculate", "description": "Recalculer scores et rangs de toute la population"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
			},
		},
		"documentation": map[string]string{
			"description": "API REST pour Terminal Tutor - stats, streaks et classement des commandes CLI",
		},
	}

	utils.Success(w, routes)
}
