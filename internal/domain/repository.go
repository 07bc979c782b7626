package domain

import "context"

// ProjectRepository reads fundraising projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
	// GetByID returns ErrNotFound when no project has the given id.
	GetByID(ctx context.Context, id string) (*Project, error)
}

// DonationRepository reads and records donations.
type DonationRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]Donation, error)
	// Create stores the donation and adds its amount to the referenced
	// project's raised total. An unknown project id is not an error.
	Create(ctx context.Context, input DonationInput) (*Donation, error)
}

// MetricsRepository reads the aggregate impact counters.
type MetricsRepository interface {
	Get(ctx context.Context) (*GlobalMetrics, error)
}

// Store bundles the repositories selected at composition time.
type Store interface {
	ProjectRepository
	DonationRepository
	MetricsRepository
}
