package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	model "github.com/jatinmayekar/terminal-tutor-backend/internal/models"
	"github.com/jatinmayekar/terminal-tutor-backend/internal/scoring"
	"github.com/jatinmayekar/terminal-tutor-backend/internal/utils"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// ErrUserNotFound est retournée quand l'utilisateur référencé n'existe pas
// (ou est soft-deleted). Erreur terminale côté appelant, jamais réessayée.
var ErrUserNotFound = errors.New("user not found")

// UserStore lit la fiche utilisateur et écrit ses champs dérivés. Le moteur
// de scoring est le seul écrivain de ces champs.
type UserStore struct {
	db *pgxpool.Pool
}

func NewUserStore(db *pgxpool.Pool) *UserStore {
	return &UserStore{db: db}
}

const userColumns = `
	u.id, COALESCE(u.name, '') as name, u.email, COALESCE(u.provider, 'email') as provider,
	u.has_access, u.is_admin, u.join_date,
	u.command_usage_count, u.streak_current, u.streak_longest, u.last_active_date,
	u.favorite_commands, u.mode_git, u.mode_docker, u.mode_aws, u.mode_k8s,
	u.score_git, u.score_docker, u.score_aws, u.score_k8s, u.overall_rank,
	u.created_at, u.updated_at`

func scanUser(row interface{ Scan(dest ...interface{}) error }) (model.UserProfile, error) {
	var user model.UserProfile
	var lastActive sql.NullTime
	var overallRank sql.NullInt64

	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Provider,
		&user.HasAccess, &user.IsAdmin, &user.JoinDate,
		&user.CommandUsageCount, &user.LearningStreak.Current, &user.LearningStreak.Longest, &lastActive,
		pq.Array(&user.FavoriteCommands),
		&user.ModePreferences.Git, &user.ModePreferences.Docker, &user.ModePreferences.Aws, &user.ModePreferences.K8s,
		&user.LeaderboardScores.GitScore, &user.LeaderboardScores.DockerScore,
		&user.LeaderboardScores.AwsScore, &user.LeaderboardScores.K8sScore, &overallRank,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return model.UserProfile{}, err
	}

	user.LastActiveDate = utils.NullTimeToPointer(lastActive)
	user.LeaderboardScores.OverallRank = utils.NullInt64ToPointer(overallRank)
	return user, nil
}

// GetByID charge une fiche utilisateur complète.
func (s *UserStore) GetByID(ctx context.Context, userID string) (model.UserProfile, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users u
		WHERE u.id = $1 AND u.deleted_at IS NULL
	`, userID)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserProfile{}, ErrUserNotFound
		}
		return model.UserProfile{}, fmt.Errorf("could not get user: %w", err)
	}
	return user, nil
}

// GetByToken valide un token de session actif et retourne l'utilisateur.
func (s *UserStore) GetByToken(ctx context.Context, token string) (model.UserProfile, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users u
		JOIN sessions s ON u.id = s.user_id
		WHERE s.token = $1
			AND s.is_active = true
			AND s.expires_at > NOW()
			AND u.deleted_at IS NULL
			AND s.deleted_at IS NULL
	`, token)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserProfile{}, fmt.Errorf("token not found or expired")
		}
		return model.UserProfile{}, fmt.Errorf("could not validate token: %w", err)
	}
	return user, nil
}

// ApplyActivity incrémente les compteurs dénormalisés après un sync: total
// de commandes, préférences par catégorie fixe, série de jours, favoris et
// date de dernière activité.
func (s *UserStore) ApplyActivity(ctx context.Context, userID string, synced int,
	modeCounts map[string]int, favorites []string, streak model.LearningStreak, now time.Time) error {

	res, err := s.db.Exec(ctx, `
		UPDATE users SET
			command_usage_count = command_usage_count + $2,
			mode_git = mode_git + $3,
			mode_docker = mode_docker + $4,
			mode_aws = mode_aws + $5,
			mode_k8s = mode_k8s + $6,
			streak_current = $7,
			streak_longest = $8,
			favorite_commands = $9,
			last_active_date = $10,
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, userID, synced,
		modeCounts["git"], modeCounts["docker"], modeCounts["aws"], modeCounts["k8s"],
		streak.Current, streak.Longest, favorites, now)
	if err != nil {
		return fmt.Errorf("could not update user activity: %w", err)
	}
	if res.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SaveCategoryScores persiste l'instantané des scores par catégorie fixe.
func (s *UserStore) SaveCategoryScores(ctx context.Context, userID string, scores map[string]int) error {
	res, err := s.db.Exec(ctx, `
		UPDATE users SET
			score_git = $2,
			score_docker = $3,
			score_aws = $4,
			score_k8s = $5,
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, userID, scores["git"], scores["docker"], scores["aws"], scores["k8s"])
	if err != nil {
		return fmt.Errorf("could not save category scores: %w", err)
	}
	if res.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SaveOverallRank persiste le rang global attribué par la passe de classement.
func (s *UserStore) SaveOverallRank(ctx context.Context, userID string, rank int) error {
	res, err := s.db.Exec(ctx, `
		UPDATE users SET overall_rank = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, userID, rank)
	if err != nil {
		return fmt.Errorf("could not save overall rank: %w", err)
	}
	if res.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ListCategoryScores relit les scores persistés de la population active,
// triés par id pour un départage stable des égalités.
func (s *UserStore) ListCategoryScores(ctx context.Context) ([]scoring.UserScores, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, score_git, score_docker, score_aws, score_k8s
		FROM users
		WHERE command_usage_count > 0 AND deleted_at IS NULL
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("could not query category scores: %w", err)
	}
	defer rows.Close()

	var all []scoring.UserScores
	for rows.Next() {
		var us scoring.UserScores
		var git, docker, aws, k8s int
		if err := rows.Scan(&us.UserID, &git, &docker, &aws, &k8s); err != nil {
			return nil, fmt.Errorf("could not scan category scores: %w", err)
		}
		us.Scores = map[string]int{"git": git, "docker": docker, "aws": aws, "k8s": k8s}
		all = append(all, us)
	}
	return all, rows.Err()
}
