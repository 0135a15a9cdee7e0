package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mww/yahoo_sync/controller"
	"github.com/mww/yahoo_sync/model"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, health *model.Health, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	// Served even when the sync loop never started, so the gateway can see
	// why the service is unhealthy.
	r.Get("/health", healthHandler(health, render))

	// Discovery and import both talk to yahoo on the caller's behalf, so
	// give them more room than the read-only endpoints.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		r.Post("/discover/{guid}", discoverHandler(ctrl, render))
		r.Post("/import-league", importLeagueHandler(ctrl, render))
	})

	r.Get("/leagues/{guid}", userLeaguesHandler(ctrl, render))
	r.Get("/matchups/{leagueKey}/{week:\\d+}", matchupsHandler(ctrl, render))

	return r
}
