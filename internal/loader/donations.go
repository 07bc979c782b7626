package loader

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"fundraiser/internal/domain"
)

// Donations loads the supporters of whichever project is currently viewed.
// Switching projects supersedes any fetch still running for the previous one.
type Donations struct {
	repo domain.DonationRepository

	mu        sync.Mutex
	projectID string
	res       *resource[[]domain.Donation]
}

// NewDonations returns an idle loader bound to no project.
func NewDonations(repo domain.DonationRepository, logger zerolog.Logger) *Donations {
	d := &Donations{repo: repo}
	d.res = newResource("donations", []domain.Donation{}, nil, logger)
	d.res.state.Loading = false
	return d
}

// Load switches to projectID and fetches its donations. The donations of a
// previously viewed project are cleared first. The sequence number is taken
// under the same lock as the switch, so only a fetch for the current project
// can publish.
func (d *Donations) Load(ctx context.Context, projectID string) State[[]domain.Donation] {
	d.mu.Lock()
	if d.projectID != projectID {
		d.projectID = projectID
		d.res.reset(State[[]domain.Donation]{Data: []domain.Donation{}, Loading: true})
	}
	seq := d.res.begin()
	d.mu.Unlock()

	data, err := d.repo.ListByProject(ctx, projectID)
	state, _ := d.res.publish(seq, data, err)
	return state
}

// Refetch reloads the current project's donations.
func (d *Donations) Refetch(ctx context.Context) State[[]domain.Donation] {
	return d.Load(ctx, d.ProjectID())
}

// ProjectID returns the project the loader is bound to.
func (d *Donations) ProjectID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.projectID
}

// State returns the current snapshot.
func (d *Donations) State() State[[]domain.Donation] {
	return d.res.snapshot()
}
