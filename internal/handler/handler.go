package handler

import (
	"net/http"

	"github.com/jatinmayekar/terminal-tutor-backend/internal/database"
	"github.com/jatinmayekar/terminal-tutor-backend/internal/scoring"
	"github.com/jatinmayekar/terminal-tutor-backend/internal/store"
	"github.com/jatinmayekar/terminal-tutor-backend/internal/utils"
)

var (
	events *store.EventStore
	users  *store.UserStore
	engine *scoring.Engine
)

// Init branche les handlers sur le pool Postgres partagé. À appeler après
// database.ConnectPostgres, avant d'enregistrer les routes.
func Init() {
	events = store.NewEventStore(database.DB)
	users = store.NewUserStore(database.DB)
	engine = scoring.NewEngine(events, users)
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
