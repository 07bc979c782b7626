package memory

import (
	"time"

	"fundraiser/internal/domain"
)

// Seed is the initial content of a Store.
type Seed struct {
	Projects  []domain.Project
	Donations []domain.Donation
	Metrics   domain.GlobalMetrics
}

// DefaultSeed returns a fresh copy of the demo dataset: six projects, five
// donations and the default impact counters.
func DefaultSeed() Seed {
	return Seed{
		Projects: []domain.Project{
			{
				ID:           "1",
				Title:        "Clean Water Initiative",
				LocationType: domain.LocationVillage,
				Description:  "Providing clean drinking water to 500 families in rural villages through well construction and water purification systems.",
				GoalAmount:   50000,
				RaisedAmount: 32500,
				Status:       domain.ProjectInProgress,
				ImageURL:     strPtr("https://images.unsplash.com/photo-1541844053589-346841d0b34c?w=800"),
				CreatedAt:    mustTime("2024-01-15T10:00:00Z"),
				UpdatedAt:    mustTime("2024-02-01T15:30:00Z"),
			},
			{
				ID:           "2",
				Title:        "Education Center",
				LocationType: domain.LocationSlum,
				Description:  "Building a community education center to provide free tutoring and skills training for children and adults.",
				GoalAmount:   75000,
				RaisedAmount: 68000,
				Status:       domain.ProjectInProgress,
				ImageURL:     strPtr("https://images.unsplash.com/photo-1497633762265-9d179a990aa6?w=800"),
				CreatedAt:    mustTime("2024-01-10T08:00:00Z"),
				UpdatedAt:    mustTime("2024-02-05T12:00:00Z"),
			},
			{
				ID:           "3",
				Title:        "Healthcare Clinic",
				LocationType: domain.LocationVillage,
				Description:  "Establishing a primary healthcare clinic with essential medical supplies and trained staff.",
				GoalAmount:   100000,
				RaisedAmount: 45000,
				Status:       domain.ProjectInProgress,
				ImageURL:     strPtr("https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?w=800"),
				CreatedAt:    mustTime("2024-01-20T09:00:00Z"),
				UpdatedAt:    mustTime("2024-02-03T14:00:00Z"),
			},
			{
				ID:           "4",
				Title:        "Solar Power Project",
				LocationType: domain.LocationVillage,
				Description:  "Installing solar panels to provide sustainable electricity to 200 households.",
				GoalAmount:   60000,
				RaisedAmount: 60000,
				Status:       domain.ProjectCompleted,
				ImageURL:     strPtr("https://images.unsplash.com/photo-1509391366360-2e959784a276?w=800"),
				CreatedAt:    mustTime("2023-11-01T10:00:00Z"),
				UpdatedAt:    mustTime("2024-01-15T16:00:00Z"),
			},
			{
				ID:           "5",
				Title:        "Food Security Program",
				LocationType: domain.LocationSlum,
				Description:  "Creating community gardens and providing agricultural training to ensure food security.",
				GoalAmount:   40000,
				RaisedAmount: 28000,
				Status:       domain.ProjectInProgress,
				ImageURL:     strPtr("https://images.unsplash.com/photo-1464226184884-fa280b87c399?w=800"),
				CreatedAt:    mustTime("2024-01-25T11:00:00Z"),
				UpdatedAt:    mustTime("2024-02-06T10:00:00Z"),
			},
			{
				ID:           "6",
				Title:        "Women Empowerment Center",
				LocationType: domain.LocationSlum,
				Description:  "Establishing a center for vocational training and microfinance support for women entrepreneurs.",
				GoalAmount:   55000,
				RaisedAmount: 41000,
				Status:       domain.ProjectInProgress,
				ImageURL:     strPtr("https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=800"),
				CreatedAt:    mustTime("2024-01-12T13:00:00Z"),
				UpdatedAt:    mustTime("2024-02-04T11:00:00Z"),
			},
		},
		Donations: []domain.Donation{
			{ID: "1", Amount: 500, DonorName: "Sarah Johnson", ProjectID: "1", IsRecurring: true, CreatedAt: mustTime("2024-02-08T10:30:00Z")},
			{ID: "2", Amount: 250, DonorName: "Michael Chen", ProjectID: "1", IsRecurring: false, CreatedAt: mustTime("2024-02-07T14:20:00Z")},
			{ID: "3", Amount: 1000, DonorName: "Emily Rodriguez", ProjectID: "2", IsRecurring: true, CreatedAt: mustTime("2024-02-08T09:15:00Z")},
			{ID: "4", Amount: 100, DonorName: "David Kim", ProjectID: "3", IsRecurring: false, CreatedAt: mustTime("2024-02-06T16:45:00Z")},
			{ID: "5", Amount: 750, DonorName: "Lisa Anderson", ProjectID: "2", IsRecurring: false, CreatedAt: mustTime("2024-02-05T11:30:00Z")},
		},
		Metrics: domain.DefaultGlobalMetrics,
	}
}

func strPtr(s string) *string { return &s }

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}
