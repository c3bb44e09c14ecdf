package store

import (
	"context"
	"fmt"

	model "github.com/jatinmayekar/terminal-tutor-backend/internal/models"
	"github.com/jatinmayekar/terminal-tutor-backend/internal/scoring"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventStore accède au journal append-only command_events. Le moteur de
// scoring n'y fait que des lectures; la seule écriture est l'insertion en
// masse d'un lot de sync.
type EventStore struct {
	db *pgxpool.Pool
}

func NewEventStore(db *pgxpool.Pool) *EventStore {
	return &EventStore{db: db}
}

// CountEvents compte les événements correspondant au filtre.
func (s *EventStore) CountEvents(ctx context.Context, f scoring.Filter) (int, error) {
	sqlQuery := `SELECT COUNT(*) FROM command_events WHERE user_id = $1`
	args := []interface{}{f.UserID}

	if f.Category != "" {
		args = append(args, f.Category)
		sqlQuery += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.RiskLevel != "" {
		args = append(args, f.RiskLevel)
		sqlQuery += fmt.Sprintf(" AND risk_level = $%d", len(args))
	}

	var count int
	if err := s.db.QueryRow(ctx, sqlQuery, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("could not count events: %w", err)
	}
	return count, nil
}

// DistinctCommands liste les commandes distinctes du filtre.
func (s *EventStore) DistinctCommands(ctx context.Context, f scoring.Filter) ([]string, error) {
	sqlQuery := `SELECT DISTINCT command FROM command_events WHERE user_id = $1`
	args := []interface{}{f.UserID}

	if f.Category != "" {
		args = append(args, f.Category)
		sqlQuery += fmt.Sprintf(" AND category = $%d", len(args))
	}

	rows, err := s.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query distinct commands: %w", err)
	}
	defer rows.Close()

	var commands []string
	for rows.Next() {
		var command string
		if err := rows.Scan(&command); err != nil {
			return nil, fmt.Errorf("could not scan command: %w", err)
		}
		commands = append(commands, command)
	}
	return commands, rows.Err()
}

// ListActiveUsers liste les utilisateurs ayant au moins un événement.
// L'ordre par id fixe le départage des égalités du classement.
func (s *EventStore) ListActiveUsers(ctx context.Context) ([]scoring.ActiveUser, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, COALESCE(name, '') as name
		FROM users
		WHERE command_usage_count > 0 AND deleted_at IS NULL
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("could not query active users: %w", err)
	}
	defer rows.Close()

	var users []scoring.ActiveUser
	for rows.Next() {
		var u scoring.ActiveUser
		if err := rows.Scan(&u.UserID, &u.Name); err != nil {
			return nil, fmt.Errorf("could not scan active user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// InsertEvents insère un lot d'événements déjà normalisés via COPY.
func (s *EventStore) InsertEvents(ctx context.Context, events []model.CommandEvent) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	rows := make([][]interface{}, len(events))
	for i, ev := range events {
		rows[i] = []interface{}{
			ev.UserID, ev.Command, ev.Category,
			ev.RiskLevel, ev.InteractionType, ev.Executed, ev.CreatedAt,
		}
	}

	inserted, err := s.db.CopyFrom(ctx,
		pgx.Identifier{"command_events"},
		[]string{"user_id", "command", "category", "risk_level", "interaction_type", "executed", "created_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("could not insert events: %w", err)
	}
	return int(inserted), nil
}

// RecentCommands retourne les derniers événements d'un utilisateur, les plus
// récents d'abord.
func (s *EventStore) RecentCommands(ctx context.Context, userID string, limit int) ([]model.CommandEvent, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, command, category, risk_level, interaction_type, executed, created_at
		FROM command_events
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("could not query recent commands: %w", err)
	}
	defer rows.Close()

	var events []model.CommandEvent
	for rows.Next() {
		ev := model.CommandEvent{UserID: userID}
		if err := rows.Scan(&ev.ID, &ev.Command, &ev.Category,
			&ev.RiskLevel, &ev.InteractionType, &ev.Executed, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan command event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
