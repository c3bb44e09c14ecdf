package model

import (
	"strings"
	"time"
)

// Niveaux de risque d'une commande, tels que classifiés par le CLI.
const (
	RiskSafe      = "safe"
	RiskCaution   = "caution"
	RiskDangerous = "dangerous"
)

// Types d'interaction côté CLI.
const (
	InteractionPrediction = "prediction"
	InteractionSuggestion = "suggestion"
	InteractionAskMode    = "ask_mode"
)

// CommandEvent est une interaction enregistrée dans le journal append-only.
// Jamais modifié ni supprimé après insertion.
type CommandEvent struct {
	ID              string    `json:"id,omitempty"`
	UserID          string    `json:"userId"`
	Command         string    `json:"command"`
	Category        string    `json:"category"` // git, docker, aws, k8s, ou valeur libre
	RiskLevel       string    `json:"riskLevel"`
	InteractionType string    `json:"interactionType"`
	Executed        bool      `json:"executed"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SyncedCommand est une entrée brute du payload POST /stats/sync.
type SyncedCommand struct {
	Command         string     `json:"command"`
	Category        string     `json:"category"`
	RiskLevel       string     `json:"riskLevel,omitempty"`
	InteractionType string     `json:"interactionType,omitempty"`
	Executed        bool       `json:"executed,omitempty"`
	Timestamp       *time.Time `json:"timestamp,omitempty"`
}

// ValidRiskLevel indique si la valeur appartient à l'ensemble autorisé.
func ValidRiskLevel(v string) bool {
	return v == RiskSafe || v == RiskCaution || v == RiskDangerous
}

// ValidInteractionType indique si la valeur appartient à l'ensemble autorisé.
func ValidInteractionType(v string) bool {
	return v == InteractionPrediction || v == InteractionSuggestion || v == InteractionAskMode
}

// Normalize convertit une entrée brute en événement prêt à insérer.
// Retourne false si l'entrée doit être ignorée: command ou category vide,
// ou valeur hors des ensembles énumérés. Les champs absents prennent leur
// valeur par défaut (safe / prediction / horodatage du sync).
func (sc SyncedCommand) Normalize(userID string, now time.Time) (CommandEvent, bool) {
	command := strings.TrimSpace(sc.Command)
	category := strings.ToLower(strings.TrimSpace(sc.Category))
	if command == "" || category == "" {
		return CommandEvent{}, false
	}

	risk := sc.RiskLevel
	if risk == "" {
		risk = RiskSafe
	}
	if !ValidRiskLevel(risk) {
		return CommandEvent{}, false
	}

	interaction := sc.InteractionType
	if interaction == "" {
		interaction = InteractionPrediction
	}
	if !ValidInteractionType(interaction) {
		return CommandEvent{}, false
	}

	createdAt := now
	if sc.Timestamp != nil {
		createdAt = *sc.Timestamp
	}

	return CommandEvent{
		UserID:          userID,
		Command:         command,
		Category:        category,
		RiskLevel:       risk,
		InteractionType: interaction,
		Executed:        sc.Executed,
		CreatedAt:       createdAt,
	}, true
}
