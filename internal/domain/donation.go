package domain

import "time"

// Donation represents a single contribution to one project. Records are
// immutable once created.
type Donation struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	DonorName   string    `json:"donor_name"`
	CampaignID  *string   `json:"campaign_id"`
	ProjectID   string    `json:"project_id"`
	IsRecurring bool      `json:"is_recurring"`
	CreatedAt   time.Time `json:"created_at"`
}

// Clone returns a copy that shares no memory with d.
func (d Donation) Clone() Donation {
	if d.CampaignID != nil {
		id := *d.CampaignID
		d.CampaignID = &id
	}
	return d
}

// DonationInput is the submission payload for a new donation. Identity and
// creation time are assigned by the store.
type DonationInput struct {
	Amount      float64 `json:"amount"`
	DonorName   string  `json:"donor_name"`
	ProjectID   string  `json:"project_id"`
	CampaignID  *string `json:"campaign_id"`
	IsRecurring bool    `json:"is_recurring"`
}
