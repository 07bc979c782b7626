package repo

import (
	"context"
	"fmt"

	"fundraiser/internal/domain"
	"fundraiser/internal/infra"
	"fundraiser/internal/sqlinline"
)

// ProjectRepositoryPG implements ProjectRepository using PostgreSQL.
type ProjectRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewProjectRepository creates a new project repo.
func NewProjectRepository(sql infra.SQLExecutor) *ProjectRepositoryPG {
	return &ProjectRepositoryPG{sql: sql}
}

// List returns all projects, newest first.
func (r *ProjectRepositoryPG) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListProjects)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Project, 0)
	for rows.Next() {
		var p domain.Project
		if err := scanProject(rows, &p); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return items, nil
}

// GetByID returns the project with the given id or domain.ErrNotFound.
func (r *ProjectRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	var p domain.Project
	if err := scanProject(r.sql.QueryRow(ctx, sqlinline.QGetProject, id), &p); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project %s: %w", id, err)
	}
	return &p, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(row scanner, p *domain.Project) error {
	var location, status string
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&location,
		&p.Description,
		&p.GoalAmount,
		&p.RaisedAmount,
		&status,
		&p.ImageURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return err
	}
	p.LocationType = domain.LocationType(location)
	p.Status = domain.ProjectStatus(status)
	return nil
}
