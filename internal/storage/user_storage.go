package storage

import (
	"context"
	"database/sql"
	"errors"

	"greenmason/internal/models"

	"modernc.org/sqlite"
)

var (
	ErrUsernameExists = errors.New("username already exists")
	ErrUserNotFound   = errors.New("user not found")
)

// SQLITE_CONSTRAINT_UNIQUE
const sqliteConstraintUnique = 2067

func CreateUser(ctx context.Context, username, displayName string) (models.User, error) {
	return createUser(ctx, db, username, displayName)
}

func createUser(ctx context.Context, q querier, username, displayName string) (models.User, error) {
	if displayName == "" {
		displayName = username
	}
	now := nowFunc().UTC()
	_, err := q.ExecContext(ctx,
		"INSERT INTO users(username, display_name, total_score, actions_count, created_at, last_active) VALUES(?, ?, 0, 0, ?, ?)",
		username, displayName, formatTime(now), formatTime(now))
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) {
			if sqliteErr.Code() == sqliteConstraintUnique {
				return models.User{}, ErrUsernameExists
			}
		}
		return models.User{}, err
	}
	return getUserByUsername(ctx, q, username)
}

// EnsureUser returns the existing user or creates it.
func EnsureUser(ctx context.Context, username, displayName string) (models.User, error) {
	return ensureUser(ctx, db, username, displayName)
}

func ensureUser(ctx context.Context, q querier, username, displayName string) (models.User, error) {
	user, err := getUserByUsername(ctx, q, username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return models.User{}, err
	}
	return createUser(ctx, q, username, displayName)
}

func GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return getUserByUsername(ctx, db, username)
}

func getUserByUsername(ctx context.Context, q querier, username string) (models.User, error) {
	var user models.User
	var createdStr, activeStr string

	row := q.QueryRowContext(ctx,
		"SELECT username, display_name, total_score, actions_count, created_at, last_active FROM users WHERE username = ?",
		username)
	if err := row.Scan(
		&user.Username,
		&user.DisplayName,
		&user.TotalScore,
		&user.ActionsCount,
		&createdStr,
		&activeStr,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, ErrUserNotFound
		}
		return user, err
	}
	user.CreatedAt = parseTime(createdStr)
	user.LastActive = parseTime(activeStr)
	return user, nil
}

// GetUserRank counts the users with a strictly higher score.
func GetUserRank(ctx context.Context, username string) (int, error) {
	user, err := GetUserByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	var higher int
	row := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE total_score > ?", user.TotalScore)
	if err := row.Scan(&higher); err != nil {
		return 0, err
	}
	return higher + 1, nil
}

// GetLeaderboard returns users with a positive score, best first.
func GetLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT username, display_name, total_score, actions_count
		FROM users
		WHERE total_score > 0
		ORDER BY total_score DESC, last_active ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leaderboard := []models.LeaderboardEntry{}
	rank := 1
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.Username, &e.DisplayName, &e.TotalScore, &e.ActionsCount); err != nil {
			return nil, err
		}
		e.Rank = rank
		rank++
		leaderboard = append(leaderboard, e)
	}
	return leaderboard, rows.Err()
}
