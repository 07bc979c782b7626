package domain

import "time"

// Campaign is a personal fundraiser attached to a project. No operation uses
// it yet.
type Campaign struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	ProjectID     string    `json:"project_id"`
	Title         string    `json:"title"`
	CustomMessage *string   `json:"custom_message"`
	Goal          float64   `json:"goal"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
