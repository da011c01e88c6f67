package models

import "time"

const MaxPledgeLength = 280

type PledgeCreate struct {
	Username   string `json:"username" example:"jane_doe"`
	PledgeText string `json:"pledge_text" example:"I will bring a reusable bottle to class"`
}

// Pledge is a Love Pledge to Earth.
type Pledge struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	PledgeText  string    `json:"pledge_text"`
	CreatedAt   time.Time `json:"created_at"`
	Likes       int       `json:"likes"`
}

type PledgesResponse struct {
	Pledges []Pledge `json:"pledges"`
	Total   int      `json:"total"`
}
