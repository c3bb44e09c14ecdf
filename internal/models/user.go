package model

import (
	"time"
)

// DateFields contient les champs d'audit standard pour toutes les entités
type DateFields struct {
	CreatedAt time.Time  `json:"createdAt,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt,omitempty"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// LearningStreak compte les jours consécutifs d'activité.
type LearningStreak struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// ModePreferences compte les commandes synchronisées par catégorie fixe.
// Les catégories hors de cet ensemble restent dans le journal brut mais ne
// sont pas agrégées ici.
type ModePreferences struct {
	Git    int `json:"git"`
	Docker int `json:"docker"`
	Aws    int `json:"aws"`
	K8s    int `json:"k8s"`
}

// LeaderboardScores est l'instantané dénormalisé écrit par le moteur de
// scoring. Le journal d'événements reste la source de vérité; ces champs ne
// servent qu'aux lectures rapides. OverallRank est nil tant qu'aucune passe
// de classement n'a eu lieu.
type LeaderboardScores struct {
	GitScore    int  `json:"gitScore"`
	DockerScore int  `json:"dockerScore"`
	AwsScore    int  `json:"awsScore"`
	K8sScore    int  `json:"k8sScore"`
	OverallRank *int `json:"overallRank,omitempty"`
}

type UserProfile struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Provider  string    `json:"provider,omitempty"` // email, google, apple
	HasAccess bool      `json:"hasAccess"`          // abonnement Premium actif
	IsAdmin   bool      `json:"isAdmin"`
	JoinDate  time.Time `json:"joinDate,omitempty"`

	CommandUsageCount int               `json:"commandUsageCount"`
	LearningStreak    LearningStreak    `json:"learningStreak"`
	LastActiveDate    *time.Time        `json:"lastActiveDate,omitempty"`
	FavoriteCommands  []string          `json:"favoriteCommands"` // max 10, plus fréquentes d'abord
	ModePreferences   ModePreferences   `json:"modePreferences"`
	LeaderboardScores LeaderboardScores `json:"leaderboardScores"`
	DateFields
}

// UserStats est la réponse de GET /stats.
type UserStats struct {
	CommandUsageCount int               `json:"commandUsageCount"`
	LearningStreak    LearningStreak    `json:"learningStreak"`
	FavoriteCommands  []string          `json:"favoriteCommands"`
	ModePreferences   ModePreferences   `json:"modePreferences"`
	LeaderboardScores LeaderboardScores `json:"leaderboardScores"`
	RecentCommands    []CommandEvent    `json:"recentCommands"`
}
