package storage

import (
	"context"

	"greenmason/internal/models"
)

func GetGlobalStats(ctx context.Context) (models.GlobalStats, error) {
	stats := models.GlobalStats{ActionBreakdown: map[string]int{}}

	counts := []struct {
		query string
		dst   *int
	}{
		{"SELECT COUNT(*) FROM users", &stats.TotalUsers},
		{"SELECT COUNT(*) FROM actions", &stats.TotalActions},
		{"SELECT COUNT(*) FROM pledges", &stats.TotalPledges},
		{"SELECT COALESCE(SUM(total_score), 0) FROM users", &stats.TotalPoints},
	}
	for _, c := range counts {
		if err := db.QueryRowContext(ctx, c.query).Scan(c.dst); err != nil {
			return stats, err
		}
	}

	rows, err := db.QueryContext(ctx, "SELECT action, COUNT(*) FROM actions GROUP BY action")
	if err != nil {
		return stats, err
	}
	defer rows.Close()
	for rows.Next() {
		var action string
		var n int
		if err := rows.Scan(&action, &n); err != nil {
			return stats, err
		}
		stats.ActionBreakdown[action] = n
	}
	return stats, rows.Err()
}
