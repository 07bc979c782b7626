package handlers

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"fundraiser/internal/domain"
	"fundraiser/internal/loader"
	"fundraiser/internal/view"
)

// Metrics never fails: the loader falls back to the default counters.
func (a *App) Metrics(w http.ResponseWriter, r *http.Request) {
	state := loader.NewMetrics(a.Store, *a.log(r)).Load(r.Context())
	a.json(w, http.StatusOK, state.Data)
}

// Dashboard loads projects and metrics concurrently and renders the landing
// page. A project failure is reported inside the payload, not as a status.
func (a *App) Dashboard(w http.ResponseWriter, r *http.Request) {
	logger := *a.log(r)
	projects := loader.NewProjects(a.Store, logger)
	metrics := loader.NewMetrics(a.Store, logger)

	var (
		ps loader.State[[]domain.Project]
		ms loader.State[domain.GlobalMetrics]
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		ps = projects.Load(ctx)
		return nil
	})
	g.Go(func() error {
		ms = metrics.Load(ctx)
		return nil
	})
	_ = g.Wait()

	a.json(w, http.StatusOK, view.Dashboard{
		Metrics:         view.NewImpactMetrics(ms.Data),
		MetricsLoading:  ms.Loading,
		Featured:        view.Featured(ps.Data),
		ProjectsLoading: ps.Loading,
		ProjectsError:   ps.Error,
	})
}
