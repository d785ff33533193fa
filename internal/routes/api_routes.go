package routes

import (
	"github.com/go-chi/chi/v5"

	"droneworks/hangar/internal/api"
	"droneworks/hangar/internal/metrics"
	"droneworks/hangar/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, deps *api.Dependencies) {

	svcs := deps.Services

	// Public routes with metrics
	r.Group(func(public chi.Router) {
		public.Use(middleware.MetricsMiddleware(metricsReg))
		public.Post("/api/v1/auth/register", api.RegisterPersonnel(svcs.Registration, svcs.Authorization))
		public.Post("/api/v1/auth/login", api.Login(svcs.Registration))
	})

	// API v1 routes
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))
		v1.Use(middleware.AuthMiddleware(svcs.Token, deps.Repo.Personnel, deps.Repo.Team, deps.Repo.Keys))

		v1.Get("/user/details", api.GetUserDetails(svcs.Authorization))
		v1.Get("/teams", api.ListTeams(deps.Repo.Team, svcs.Authorization))

		// Inventory: any authenticated operator can browse; creation is
		// gated by the operator's team inside the service.
		v1.Post("/components", api.CreateComponent(svcs.Component))
		v1.Get("/components/available", api.ListAvailableComponents(svcs.Component))
		v1.Post("/components/recycle", api.RecycleComponents(svcs.Recycle))

		v1.Post("/aircraft", api.CreateAircraft(svcs.Aircraft))
		v1.Get("/aircraft", api.ListAircraft(svcs.Aircraft))
		v1.Get("/aircraft/{aircraft_id}", api.GetAircraft(svcs.Aircraft))
		v1.Get("/aircraft/{aircraft_id}/parts", api.CheckAircraftParts(svcs.Assembly))

		// Staff-only group
		v1.Group(func(staff chi.Router) {
			staff.Use(middleware.IsStaffMiddleware())

			staff.Get("/personnel", api.ListPersonnel(deps.Repo.Personnel, deps.Repo.Team, svcs.Authorization))
		})

		// Assembly-crew-only group
		v1.Group(func(assembler chi.Router) {
			assembler.Use(middleware.IsAssemblerMiddleware())

			assembler.Post("/assembly/install", api.InstallComponent(svcs.Assembly))
			assembler.Post("/assembly/uninstall", api.UninstallComponent(svcs.Assembly))
		})
	})
}
