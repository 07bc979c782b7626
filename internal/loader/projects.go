package loader

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"fundraiser/internal/domain"
)

// Projects loads the full project collection.
type Projects struct {
	repo domain.ProjectRepository
	res  *resource[[]domain.Project]
}

// NewProjects returns a loader in the loading state with no data.
func NewProjects(repo domain.ProjectRepository, logger zerolog.Logger) *Projects {
	return &Projects{
		repo: repo,
		res:  newResource("projects", []domain.Project{}, repo.List, logger),
	}
}

// Load fetches the collection and returns the resulting state.
func (p *Projects) Load(ctx context.Context) State[[]domain.Project] {
	state, _ := p.res.load(ctx)
	return state
}

// Refetch is Load under the name views use for a manual reload.
func (p *Projects) Refetch(ctx context.Context) State[[]domain.Project] {
	return p.Load(ctx)
}

// State returns the current snapshot.
func (p *Projects) State() State[[]domain.Project] {
	return p.res.snapshot()
}

// ProjectByID looks a single project up without touching the collection's
// loading or error state. A missing project yields nil and no error.
func (p *Projects) ProjectByID(ctx context.Context, id string) (*domain.Project, error) {
	project, err := p.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return project, nil
}
