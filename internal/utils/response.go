package utils

import (
	"encoding/json"
	"net/http"
)

type APIResponse struct {
	Success         bool        `json:"success"`
	Data            interface{} `json:"data,omitempty"`
	Error           string      `json:"error,omitempty"`
	Message         string      `json:"message,omitempty"`
	UpgradeRequired bool        `json:"upgradeRequired,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

// Error répond avec un message côté client et log la cause complète côté
// serveur (la cause peut contenir des détails SQL qu'on ne renvoie pas).
func Error(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		LogError("[%d] %s: %v", status, message, err)
	} else {
		LogError("[%d] %s", status, message)
	}
	JSON(w, status, APIResponse{Success: false, Error: message})
}

func ErrorSimple(w http.ResponseWriter, status int, message string) {
	Error(w, status, message, nil)
}

// UpgradeRequired répond 403 avec le signal dédié "abonnement requis", que
// le CLI distingue d'une erreur générique pour afficher l'offre Premium.
func UpgradeRequired(w http.ResponseWriter, message string) {
	JSON(w, http.StatusForbidden, APIResponse{
		Success:         false,
		Error:           "premium_required",
		Message:         message,
		UpgradeRequired: true,
	})
}

func Message(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Message: msg})
}
