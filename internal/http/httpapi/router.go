package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"fundraiser/internal/http/handlers"
	"fundraiser/internal/middleware"
)

// Options tunes the middleware chain.
type Options struct {
	Logger         zerolog.Logger
	AllowedOrigins []string
	Locales        []language.Tag
	CountryLookup  middleware.CountryLookup
	// DonationsPerMinute caps donation submissions per client IP; zero
	// disables the limit.
	DonationsPerMinute int
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.I18N(opts.Locales, opts.CountryLookup),
		middleware.Logger(opts.Logger),
		chimw.Recoverer,
		middleware.CORS(opts.AllowedOrigins),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/dashboard", app.Dashboard)
		r.Get("/metrics", app.Metrics)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", app.ProjectsList)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", app.ProjectGet)
				r.Get("/detail", app.ProjectDetail)
				r.Get("/donations", app.DonationsList)

				create := http.Handler(http.HandlerFunc(app.DonationsCreate))
				if opts.DonationsPerMinute > 0 {
					create = middleware.RateLimit(opts.DonationsPerMinute, time.Minute)(create)
				}
				r.Method(http.MethodPost, "/donations", create)
			})
		})
	})

	return r
}
