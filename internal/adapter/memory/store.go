// Package memory implements the domain repositories on top of an in-process
// dataset with simulated network latency. Nothing survives a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fundraiser/internal/domain"
)

// Latency holds the simulated delay of each operation.
type Latency struct {
	ListProjects   time.Duration
	GetProject     time.Duration
	ListDonations  time.Duration
	GetMetrics     time.Duration
	CreateDonation time.Duration
}

// DefaultLatency mirrors the response times of a typical hosted backend.
var DefaultLatency = Latency{
	ListProjects:   500 * time.Millisecond,
	GetProject:     300 * time.Millisecond,
	ListDonations:  300 * time.Millisecond,
	GetMetrics:     400 * time.Millisecond,
	CreateDonation: 500 * time.Millisecond,
}

// Option configures a Store.
type Option func(*Store)

// WithSeed replaces the default dataset.
func WithSeed(seed Seed) Option {
	return func(s *Store) { s.load(seed) }
}

// WithLatency overrides the simulated delays. The zero value disables them.
func WithLatency(l Latency) Option {
	return func(s *Store) { s.latency = l }
}

// WithClock overrides the source of donation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides how donation ids are assigned.
func WithIDGenerator(next func() string) Option {
	return func(s *Store) { s.nextID = next }
}

// WithLogger attaches a logger used for mutation events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Store owns the project and donation collections for its lifetime. All reads
// return copies; Create is the only mutation.
type Store struct {
	mu        sync.RWMutex
	projects  []domain.Project
	donations []domain.Donation
	metrics   domain.GlobalMetrics

	latency Latency
	now     func() time.Time
	nextID  func() string
	logger  zerolog.Logger
}

var _ domain.Store = (*Store)(nil)

// New builds a Store seeded with DefaultSeed and DefaultLatency.
func New(opts ...Option) *Store {
	s := &Store{
		latency: DefaultLatency,
		now:     func() time.Time { return time.Now().UTC() },
		nextID:  uuid.NewString,
		logger:  zerolog.Nop(),
	}
	s.load(DefaultSeed())
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) load(seed Seed) {
	s.projects = make([]domain.Project, 0, len(seed.Projects))
	for _, p := range seed.Projects {
		s.projects = append(s.projects, p.Clone())
	}
	s.donations = make([]domain.Donation, 0, len(seed.Donations))
	for _, d := range seed.Donations {
		s.donations = append(s.donations, d.Clone())
	}
	s.metrics = seed.Metrics
}

// List returns every project in seed order.
func (s *Store) List(ctx context.Context) ([]domain.Project, error) {
	if err := wait(ctx, s.latency.ListProjects); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		items = append(items, p.Clone())
	}
	return items, nil
}

// GetByID returns the project with exactly the given id.
func (s *Store) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	if err := wait(ctx, s.latency.GetProject); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.projectIndex(id); i >= 0 {
		p := s.projects[i].Clone()
		return &p, nil
	}
	return nil, domain.ErrNotFound
}

// ListByProject returns the project's donations in insertion order.
func (s *Store) ListByProject(ctx context.Context, projectID string) ([]domain.Donation, error) {
	if err := wait(ctx, s.latency.ListDonations); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.Donation, 0)
	for _, d := range s.donations {
		if d.ProjectID == projectID {
			items = append(items, d.Clone())
		}
	}
	return items, nil
}

// Get returns the static impact counters.
func (s *Store) Get(ctx context.Context) (*domain.GlobalMetrics, error) {
	if err := wait(ctx, s.latency.GetMetrics); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	m := s.metrics
	return &m, nil
}

// Create records a donation and credits its amount to the referenced project.
// The input is not validated. An unknown project id leaves every balance
// untouched.
func (s *Store) Create(ctx context.Context, input domain.DonationInput) (*domain.Donation, error) {
	if err := wait(ctx, s.latency.CreateDonation); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	donation := domain.Donation{
		ID:          s.nextID(),
		Amount:      input.Amount,
		DonorName:   input.DonorName,
		CampaignID:  input.CampaignID,
		ProjectID:   input.ProjectID,
		IsRecurring: input.IsRecurring,
		CreatedAt:   s.now(),
	}.Clone()
	s.donations = append(s.donations, donation)

	if i := s.projectIndex(input.ProjectID); i >= 0 {
		s.projects[i].RaisedAmount += input.Amount
		s.logger.Debug().
			Str("project_id", input.ProjectID).
			Float64("raised_amount", s.projects[i].RaisedAmount).
			Msg("memory: project balance updated")
	} else {
		s.logger.Debug().Str("project_id", input.ProjectID).Msg("memory: donation for unknown project")
	}

	out := donation.Clone()
	return &out, nil
}

// projectIndex must be called with mu held.
func (s *Store) projectIndex(id string) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}

func wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
