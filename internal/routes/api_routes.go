package routes

import (
	"github.com/go-chi/chi/v5"

	"vattours/server/internal/api"
	"vattours/server/internal/constants"
	"vattours/server/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, deps *api.Dependencies) {

	// API v1 routes
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.AuthMiddleware(deps.Services.Session)) // global: all routes must carry a session token

		v1.Get("/tours", handlers.ListTours())
		v1.Get("/tours/{tourID}", handlers.GetTourDetail())
		v1.Post("/tours/{tourID}/pireps", handlers.SubmitPirep())

		v1.Get("/pireps", handlers.ListMyPireps())

		v1.Get("/airports", handlers.ListAirports())
		v1.Get("/airports/{code}", handlers.GetAirport())

		v1.Get("/badges", handlers.ListBadges())

		v1.Get("/users/me", handlers.GetMyProfile())
		v1.Get("/users/me/progress", handlers.GetMyTourProgress())

		// Admin-only group
		v1.Group(func(admin chi.Router) {
			admin.Use(middleware.RequireRole(constants.RoleAdmin))

			admin.Get("/admin/pireps", handlers.ReviewQueue())
			admin.Post("/admin/pireps/{pirepID}/review", handlers.ReviewPirep())

			admin.Post("/admin/tours", handlers.CreateTour())
			admin.Put("/admin/tours/{tourID}", handlers.UpdateTour())
			admin.Delete("/admin/tours/{tourID}", handlers.DeleteTour())
			admin.Post("/admin/tours/{tourID}/image", handlers.UploadTourImage())
			admin.Put("/admin/tours/{tourID}/badges/{badgeID}", handlers.LinkTourBadge())
			admin.Delete("/admin/tours/{tourID}/badges/{badgeID}", handlers.UnlinkTourBadge())

			admin.Post("/admin/airports", handlers.CreateAirport())
			admin.Put("/admin/airports/{code}", handlers.UpdateAirport())
			admin.Delete("/admin/airports/{code}", handlers.DeleteAirport())

			admin.Post("/admin/badges", handlers.CreateBadge())
			admin.Put("/admin/badges/{badgeID}", handlers.UpdateBadge())
			admin.Delete("/admin/badges/{badgeID}", handlers.DeleteBadge())

			admin.Put("/admin/users/{userID}/role", handlers.SetUserRole())
		})
	})
}
