package storage

import (
	"context"
	"database/sql"
	"fmt"

	"greenmason/internal/models"

	"github.com/google/uuid"
)

// LogAction records a score event and updates the user's totals in one transaction.
// The user is created when missing.
func LogAction(ctx context.Context, username, action string, points int, description string) (models.ScoreResult, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return models.ScoreResult{}, err
	}
	defer tx.Rollback()

	if _, err := ensureUser(ctx, tx, username, ""); err != nil {
		return models.ScoreResult{}, fmt.Errorf("LogAction(): ensure user: %w", err)
	}

	now := formatTime(nowFunc())
	var desc sql.NullString
	if description != "" {
		desc = sql.NullString{String: description, Valid: true}
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO actions(id, username, action, points, description, created_at) VALUES(?, ?, ?, ?, ?, ?)",
		uuid.New().String(), username, action, points, desc, now); err != nil {
		return models.ScoreResult{}, fmt.Errorf("LogAction(): insert action: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE users SET total_score = total_score + ?, actions_count = actions_count + 1, last_active = ? WHERE username = ?",
		points, now, username); err != nil {
		return models.ScoreResult{}, fmt.Errorf("LogAction(): update user: %w", err)
	}

	updated, err := getUserByUsername(ctx, tx, username)
	if err != nil {
		return models.ScoreResult{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.ScoreResult{}, err
	}
	return models.ScoreResult{
		Username:    username,
		PointsAdded: points,
		NewTotal:    updated.TotalScore,
		Action:      action,
	}, nil
}

// GetActionsByUsername returns a user's score history, newest first.
func GetActionsByUsername(ctx context.Context, username string, limit int) ([]models.Action, error) {
	query := `
		SELECT id, username, action, points, description, created_at
		FROM actions
		WHERE username = ?
		ORDER BY created_at DESC
		LIMIT ?
	`
	rows, err := db.QueryContext(ctx, query, username, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actions := []models.Action{}
	for rows.Next() {
		var a models.Action
		var desc sql.NullString
		var createdStr string

		if err := rows.Scan(&a.ID, &a.Username, &a.Action, &a.Points, &desc, &createdStr); err != nil {
			return nil, err
		}
		a.Description = desc.String
		a.CreatedAt = parseTime(createdStr)
		actions = append(actions, a)
	}
	return actions, rows.Err()
}
