package loader

import (
	"context"

	"github.com/rs/zerolog"

	"fundraiser/internal/domain"
)

// Metrics loads the impact counters. Failures are never surfaced: the
// loader falls back to domain.DefaultGlobalMetrics instead.
type Metrics struct {
	res *resource[domain.GlobalMetrics]
}

// NewMetrics returns a loader in the loading state with zeroed counters.
func NewMetrics(repo domain.MetricsRepository, logger zerolog.Logger) *Metrics {
	fetch := func(ctx context.Context) (domain.GlobalMetrics, error) {
		m, err := repo.Get(ctx)
		if err != nil {
			return domain.GlobalMetrics{}, err
		}
		return *m, nil
	}
	res := newResource("metrics", domain.GlobalMetrics{}, fetch, logger)
	res.recover = func(error) (domain.GlobalMetrics, bool) {
		return domain.DefaultGlobalMetrics, true
	}
	return &Metrics{res: res}
}

// Load fetches the counters and returns the resulting state.
func (m *Metrics) Load(ctx context.Context) State[domain.GlobalMetrics] {
	state, _ := m.res.load(ctx)
	return state
}

// Refetch is Load under the name views use for a manual reload.
func (m *Metrics) Refetch(ctx context.Context) State[domain.GlobalMetrics] {
	return m.Load(ctx)
}

// State returns the current snapshot.
func (m *Metrics) State() State[domain.GlobalMetrics] {
	return m.res.snapshot()
}
