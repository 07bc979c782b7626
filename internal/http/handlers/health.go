package handlers

import (
	"net/http"
)

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	backend := a.Backend
	if backend == "" {
		backend = "unknown"
	}
	a.json(w, http.StatusOK, map[string]string{"status": "ok", "backend": backend})
}
