package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"fundraiser/internal/domain"
)

// App carries what every handler needs. Loaders are built per request so
// concurrent requests never supersede each other's fetches.
type App struct {
	Store  domain.Store
	Logger zerolog.Logger

	// Backend names the store implementation for the health report.
	Backend string
}

func NewApp(store domain.Store, logger zerolog.Logger) *App {
	return &App{Store: store, Logger: logger}
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, errorBody{Error: errorDetail{Code: errCode, Message: message}})
}

// log prefers the request-scoped logger installed by the access log
// middleware.
func (a *App) log(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &a.Logger
}
