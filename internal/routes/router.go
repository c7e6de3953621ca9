package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"vattours/server/internal/api"
	"vattours/server/internal/logging"
	"vattours/server/internal/middleware"
)

// RegisterRoutes builds the chi router around the injected dependency
// container and returns the root handler.
func RegisterRoutes(deps *api.Dependencies, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// handlers with injected dependencies
	handlers := api.NewHandlers(deps)

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(deps.SqlxDB, upSince))

	// session issuance happens before auth
	r.Post("/auth/session", handlers.CreateSession())

	RegisterAPIRoutes(r, handlers, deps)

	return r
}
