package domain

import "time"

// LocationType enumerates the kinds of community a project serves.
type LocationType string

const (
	LocationVillage LocationType = "Village"
	LocationSlum    LocationType = "Slum"
)

// ProjectStatus enumerates project lifecycle states.
type ProjectStatus string

const (
	ProjectInProgress ProjectStatus = "In-Progress"
	ProjectCompleted  ProjectStatus = "Completed"
)

// Project is a fundraising effort with a monetary goal and a running total.
// RaisedAmount is the only field that changes after seeding.
type Project struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	LocationType LocationType  `json:"location_type"`
	Description  string        `json:"description"`
	GoalAmount   float64       `json:"goal_amount"`
	RaisedAmount float64       `json:"raised_amount"`
	Status       ProjectStatus `json:"status"`
	ImageURL     *string       `json:"image_url"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// IsCompleted reports whether the project has been marked completed.
func (p Project) IsCompleted() bool {
	return p.Status == ProjectCompleted
}

// Clone returns a copy that shares no memory with p.
func (p Project) Clone() Project {
	if p.ImageURL != nil {
		url := *p.ImageURL
		p.ImageURL = &url
	}
	return p
}
