package scoring

import (
	"context"
	"fmt"

	model "github.com/jatinmayekar/terminal-tutor-backend/internal/models"
)

// Pondérations de la formule de score.
const (
	varietyWeight = 2 // bonus par commande distincte
	dangerWeight  = 5 // pénalité par commande dangereuse
)

// Filter restreint une requête sur le journal d'événements. Category et
// RiskLevel vides signifient "tous". Category est un filtre opaque: aucune
// validation n'est faite sur sa valeur.
type Filter struct {
	UserID    string
	Category  string
	RiskLevel string
}

// ActiveUser est un utilisateur ayant au moins un événement enregistré.
type ActiveUser struct {
	UserID string
	Name   string
}

// UserScores porte les scores par catégorie persistés d'un utilisateur,
// relus par la seconde passe du recalcul global.
type UserScores struct {
	UserID string
	Scores map[string]int
}

// EventStore expose les agrégats en lecture seule du journal de commandes.
// Implémenté par le store Postgres; le moteur ne fait que lire.
type EventStore interface {
	CountEvents(ctx context.Context, f Filter) (int, error)
	DistinctCommands(ctx context.Context, f Filter) ([]string, error)
	ListActiveUsers(ctx context.Context) ([]ActiveUser, error)
}

// UserStore reçoit les champs dénormalisés calculés par le moteur.
type UserStore interface {
	SaveCategoryScores(ctx context.Context, userID string, scores map[string]int) error
	SaveOverallRank(ctx context.Context, userID string, rank int) error
	ListCategoryScores(ctx context.Context) ([]UserScores, error)
}

// Engine dérive scores, rangs et classements du journal d'événements.
// Categories est l'ensemble fixe agrégé dans les champs par catégorie;
// les autres valeurs de catégorie restent interrogeables en filtre libre.
type Engine struct {
	Events     EventStore
	Users      UserStore
	Categories []string
}

// DefaultCategories retourne l'ensemble fixe de catégories suivies.
func DefaultCategories() []string {
	return []string{"git", "docker", "aws", "k8s"}
}

func NewEngine(events EventStore, users UserStore) *Engine {
	return &Engine{
		Events:     events,
		Users:      users,
		Categories: DefaultCategories(),
	}
}

// Score calcule le score d'un utilisateur, optionnellement restreint à une
// catégorie:
//
//	score = max(0, nbCommandes + 2*commandesDistinctes - 5*commandesDangereuses)
//
// Lecture pure, aucun effet de bord. L'existence de l'utilisateur est de la
// responsabilité de l'appelant: un utilisateur inconnu donne simplement 0.
func (e *Engine) Score(ctx context.Context, userID, category string) (int, error) {
	filter := Filter{UserID: userID, Category: category}

	commandCount, err := e.Events.CountEvents(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}

	unique, err := e.Events.DistinctCommands(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("distinct commands: %w", err)
	}
	varietyBonus := len(unique) * varietyWeight

	dangerousCount, err := e.Events.CountEvents(ctx, Filter{
		UserID:    userID,
		Category:  category,
		RiskLevel: model.RiskDangerous,
	})
	if err != nil {
		return 0, fmt.Errorf("count dangerous events: %w", err)
	}
	safetyPenalty := dangerousCount * dangerWeight

	score := commandCount + varietyBonus - safetyPenalty
	if score < 0 {
		score = 0
	}
	return score, nil
}

// CategoryScores calcule le score de chaque catégorie fixe, indépendamment.
func (e *Engine) CategoryScores(ctx context.Context, userID string) (map[string]int, error) {
	scores := make(map[string]int, len(e.Categories))
	for _, category := range e.Categories {
		score, err := e.Score(ctx, userID, category)
		if err != nil {
			return nil, err
		}
		scores[category] = score
	}
	return scores, nil
}

// TrackedCategory indique si la catégorie fait partie de l'ensemble fixe.
func (e *Engine) TrackedCategory(category string) bool {
	for _, c := range e.Categories {
		if c == category {
			return true
		}
	}
	return false
}
