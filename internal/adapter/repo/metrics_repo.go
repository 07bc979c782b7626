package repo

import (
	"context"
	"fmt"

	"fundraiser/internal/domain"
	"fundraiser/internal/infra"
	"fundraiser/internal/sqlinline"
)

// MetricsRepositoryPG aggregates impact counters from the projects table.
// No table records countries, so TotalCountries comes from the defaults.
type MetricsRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewMetricsRepository constructs the repository.
func NewMetricsRepository(sql infra.SQLExecutor) *MetricsRepositoryPG {
	return &MetricsRepositoryPG{sql: sql}
}

// Get returns live totals.
func (r *MetricsRepositoryPG) Get(ctx context.Context) (*domain.GlobalMetrics, error) {
	metrics := domain.GlobalMetrics{TotalCountries: domain.DefaultGlobalMetrics.TotalCountries}
	row := r.sql.QueryRow(ctx, sqlinline.QGlobalMetrics)
	if err := row.Scan(&metrics.TotalProjects, &metrics.TotalVillages, &metrics.TotalRaised); err != nil {
		return nil, fmt.Errorf("load metrics: %w", err)
	}
	return &metrics, nil
}
