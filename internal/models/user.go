package models

import "time"

// User is the remote profile record returned by GET /api/users/{username}.
type User struct {
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name"`
	TotalScore   int       `json:"total_score"`
	ActionsCount int       `json:"actions_count"`
	Rank         *int      `json:"rank,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	LastActive   time.Time `json:"last_active"`
}

// UserCreate is the POST /api/users request body.
type UserCreate struct {
	Username    string `json:"username" example:"jane_doe"`
	DisplayName string `json:"display_name,omitempty" example:"Jane Doe"`
}

// LeaderboardEntry is a single leaderboard row.
type LeaderboardEntry struct {
	Rank         int    `json:"rank"`
	Username     string `json:"username"`
	DisplayName  string `json:"display_name"`
	TotalScore   int    `json:"total_score"`
	ActionsCount int    `json:"actions_count"`
}

type LeaderboardResponse struct {
	Leaderboard  []LeaderboardEntry `json:"leaderboard"`
	TotalEntries int                `json:"total_entries"`
}

type GlobalStats struct {
	TotalUsers      int            `json:"total_users"`
	TotalActions    int            `json:"total_actions"`
	TotalPledges    int            `json:"total_pledges"`
	TotalPoints     int            `json:"total_points"`
	ActionBreakdown map[string]int `json:"action_breakdown"`
}
