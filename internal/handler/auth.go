package handler

import (
	"net/http"
	"time"

	"github.com/jatinmayekar/terminal-tutor-backend/internal/database"
	"github.com/jatinmayekar/terminal-tutor-backend/internal/middleware"
	"github.com/jatinmayekar/terminal-tutor-backend/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SessionDuration durée de validité d'une session (24h)
const SessionDuration = 24 * time.Hour

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := r.Context()

	var userID, name string
	var hashedPassword string
	err := database.DB.QueryRow(ctx, `
		SELECT id, COALESCE(name, '') as name, password_hash
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`, req.Email).Scan(&userID, &name, &hashedPassword)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)); err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	// Token de session opaque, pas de JWT
	token := uuid.NewString()
	now := time.Now()

	_, err = database.DB.Exec(ctx, `
		INSERT INTO sessions(user_id, token, ip_address, user_agent, is_active, created_at, expires_at)
		VALUES($1, $2, $3, $4, true, $5, $6)
	`, userID, token, r.RemoteAddr, r.UserAgent(), now, now.Add(SessionDuration))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"userId": userID,
		"name":   name,
		"token":  token,
	})
}

func Logout(w http.ResponseWriter, r *http.Request) {
	token, err := middleware.GetTokenFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "missing token")
		return
	}

	res, err := database.DB.Exec(r.Context(), `
		UPDATE sessions
		SET is_active = false, expires_at = NOW(), deleted_at = NOW()
		WHERE token = $1 AND is_active = true AND deleted_at IS NULL
	`, token)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not logout", err)
		return
	}
	if res.RowsAffected() == 0 {
		utils.ErrorSimple(w, http.StatusNotFound, "session not found or already logged out")
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}

func Signup(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if payload.Email == "" || payload.Password == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "email and password are required")
		return
	}

	ctx := r.Context()
	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not hash password", err)
		return
	}

	var userID string
	err = database.DB.QueryRow(ctx, `
		INSERT INTO users(name, email, password_hash, provider, join_date, created_at, updated_at)
		VALUES($1, $2, $3, 'email', NOW(), NOW(), NOW())
		RETURNING id
	`, payload.Name, payload.Email, string(hashed)).Scan(&userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create user", err)
		return
	}

	// Auto-login après inscription
	token := uuid.NewString()
	now := time.Now()
	_, err = database.DB.Exec(ctx, `
		INSERT INTO sessions(user_id, token, ip_address, user_agent, is_active, created_at, expires_at)
		VALUES($1, $2, $3, $4, true, $5, $6)
	`, userID, token, r.RemoteAddr, r.UserAgent(), now, now.Add(SessionDuration))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"userId": userID,
		"token":  token,
	})
}
