package model

// LeaderboardEntry est une ligne de la vue publique du classement. Le nom
// est anonymisé pour tout le monde sauf le demandeur.
type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	Name          string `json:"name"`
	Score         int    `json:"score"`
	IsCurrentUser bool   `json:"isCurrentUser"`
}

// CurrentUserSummary résume la position du demandeur, y compris s'il est
// hors du top-N affiché. Rank et Percentile à 0 signifient "non classé".
type CurrentUserSummary struct {
	Rank           int            `json:"rank"`
	Percentile     int            `json:"percentile"`
	Score          int            `json:"score"`
	CategoryScores map[string]int `json:"categoryScores"`
}

// LeaderboardView est la réponse de GET /leaderboard.
type LeaderboardView struct {
	Entries     []LeaderboardEntry `json:"leaderboard"`
	CurrentUser CurrentUserSummary `json:"currentUser"`
	TotalUsers  int                `json:"totalUsers"`
	Category    string             `json:"category"` // "overall" si aucune catégorie demandée
}

// SyncResult est la réponse de POST /stats/sync.
type SyncResult struct {
	Synced int            `json:"synced"`
	Streak LearningStreak `json:"streak"`
}
