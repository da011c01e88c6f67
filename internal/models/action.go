package models

import "time"

// Scoring action types.
const (
	ActionSort      = "sort"
	ActionChallenge = "challenge"
	ActionQuiz      = "quiz"
	ActionPledge    = "pledge"
	ActionChat      = "chat"
)

// Points awarded by the client and server for fixed actions.
const (
	PointsChat     = 5
	PointsPledge   = 20
	PointsQuiz     = 25
	PointsDefault  = 10
	PointsLandfill = 5
)

// ScoreAction is the POST /api/scores request body.
type ScoreAction struct {
	Username    string `json:"username" example:"jane_doe"`
	Action      string `json:"action" example:"sort"`
	Points      int    `json:"points" example:"15"`
	Description string `json:"description,omitempty" example:"Sorted: soda can (recyclable)"`
}

// ScoreResult acknowledges a logged action.
type ScoreResult struct {
	Username    string `json:"username"`
	PointsAdded int    `json:"points_added"`
	NewTotal    int    `json:"new_total"`
	Action      string `json:"action"`
}

// Action is a stored score event.
type Action struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Action      string    `json:"action"`
	Points      int       `json:"points"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ActionsResponse struct {
	Actions []Action `json:"actions"`
	Total   int      `json:"total"`
}
