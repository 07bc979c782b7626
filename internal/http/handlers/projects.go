package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fundraiser/internal/loader"
	"fundraiser/internal/view"
)

func (a *App) ProjectsList(w http.ResponseWriter, r *http.Request) {
	state := loader.NewProjects(a.Store, *a.log(r)).Load(r.Context())
	if state.Error != "" {
		a.error(w, http.StatusInternalServerError, "internal", state.Error)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": state.Data})
}

func (a *App) ProjectGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	project, err := loader.NewProjects(a.Store, *a.log(r)).ProjectByID(r.Context(), id)
	if err != nil {
		a.log(r).Error().Err(err).Str("project_id", id).Msg("load project failed")
		a.error(w, http.StatusInternalServerError, "internal", loader.ErrorMessage(err))
		return
	}
	if project == nil {
		a.error(w, http.StatusNotFound, "not_found", "project not found")
		return
	}
	a.json(w, http.StatusOK, project)
}

// ProjectDetail serves the project page: the card, start date and the ten
// most recent supporters.
func (a *App) ProjectDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	logger := *a.log(r)
	project, err := loader.NewProjects(a.Store, logger).ProjectByID(r.Context(), id)
	if err != nil {
		logger.Error().Err(err).Str("project_id", id).Msg("load project failed")
		a.error(w, http.StatusInternalServerError, "internal", loader.ErrorMessage(err))
		return
	}
	if project == nil {
		a.error(w, http.StatusNotFound, "not_found", "project not found")
		return
	}
	donations := loader.NewDonations(a.Store, logger).Load(r.Context(), id)
	if donations.Error != "" {
		a.error(w, http.StatusInternalServerError, "internal", donations.Error)
		return
	}
	a.json(w, http.StatusOK, view.NewProjectDetail(*project, donations.Data))
}
