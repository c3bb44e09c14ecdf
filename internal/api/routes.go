package api

import (
	"net/http"

	"github.com/jatinmayekar/terminal-tutor-backend/internal/handler"
	"github.com/jatinmayekar/terminal-tutor-backend/internal/middleware"
	"github.com/jatinmayekar/terminal-tutor-backend/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

func SetupRouter() http.Handler {
	handler.Init()

	r := mux.NewRouter()

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)
	authenticatedRoutes.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/signup", handler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)

	// Stats (Premium)
	authenticatedRoutes.HandleFunc("/stats", handler.GetStats).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/stats/sync", handler.SyncStats).Methods(http.MethodPost)

	// Leaderboard (Premium)
	authenticatedRoutes.HandleFunc("/leaderboard", handler.GetLeaderboard).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/leaderboard/recalculate", handler.RecalculateLeaderboard).Methods(http.MethodPost)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
