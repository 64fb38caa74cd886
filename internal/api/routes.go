package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes configures all HTTP routes and returns the router.
func SetupRoutes(handlers *Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/events/{year}", handlers.GetEvents)
		r.Get("/months/{year}", handlers.GetMonths)
		r.Get("/complete/{year}", handlers.GetComplete)

		r.Route("/ics", func(r chi.Router) {
			r.Get("/events/{year}", handlers.GetEventsICS)
			r.Get("/months/{year}", handlers.GetMonthsICS)
			r.Get("/complete/{year}", handlers.GetCompleteICS)
		})
	})

	return r
}
