package storage

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"greenmason/internal/models"

	"github.com/google/uuid"
)

var (
	ErrPledgeNotFound = errors.New("pledge not found")
	ErrPledgeTooLong  = fmt.Errorf("pledge text exceeds %d characters", models.MaxPledgeLength)
)

// CreatePledge stores a pledge and awards the pledge points to its author.
func CreatePledge(ctx context.Context, username, text string) (models.Pledge, error) {
	if utf8.RuneCountInString(text) > models.MaxPledgeLength {
		return models.Pledge{}, ErrPledgeTooLong
	}
	user, err := EnsureUser(ctx, username, "")
	if err != nil {
		return models.Pledge{}, err
	}

	pledge := models.Pledge{
		ID:          uuid.New().String(),
		Username:    username,
		DisplayName: user.DisplayName,
		PledgeText:  text,
		CreatedAt:   nowFunc().UTC(),
	}
	if _, err := db.ExecContext(ctx,
		"INSERT INTO pledges(id, username, display_name, pledge_text, likes, created_at) VALUES(?, ?, ?, ?, 0, ?)",
		pledge.ID, pledge.Username, pledge.DisplayName, pledge.PledgeText, formatTime(pledge.CreatedAt)); err != nil {
		return models.Pledge{}, err
	}

	if _, err := LogAction(ctx, username, models.ActionPledge, models.PointsPledge, "Love Pledge: "+truncate(text, 50)+"..."); err != nil {
		return pledge, fmt.Errorf("CreatePledge(): award points: %w", err)
	}
	return pledge, nil
}

// GetPledges returns the most recent pledges.
func GetPledges(ctx context.Context, limit int) ([]models.Pledge, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, username, display_name, pledge_text, likes, created_at
		FROM pledges
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pledges := []models.Pledge{}
	for rows.Next() {
		var p models.Pledge
		var createdStr string
		if err := rows.Scan(&p.ID, &p.Username, &p.DisplayName, &p.PledgeText, &p.Likes, &createdStr); err != nil {
			return nil, err
		}
		p.CreatedAt = parseTime(createdStr)
		pledges = append(pledges, p)
	}
	return pledges, rows.Err()
}

func LikePledge(ctx context.Context, id string) error {
	res, err := db.ExecContext(ctx, "UPDATE pledges SET likes = likes + 1 WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPledgeNotFound
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
