package web

import (
	"time"

	"github.com/cole-dav/sleeper-draft-tool/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Route("/league/{leagueID}", func(r chi.Router) {
			r.Get("/", getLeagueDataHandler(ctrl, render))
			r.Put("/order", setTeamOrderHandler(ctrl, render))

			// The sync pulls the whole player directory on a cold cache,
			// give it more room than a normal read.
			r.With(middleware.Timeout(60 * time.Second)).
				Post("/sync", syncLeagueHandler(ctrl, render))
		})

		r.Route("/picks/{pickID:\\d+}", func(r chi.Router) {
			r.Patch("/", updatePickHandler(ctrl, render))
			r.Post("/prediction", savePredictionHandler(ctrl, render))
		})

		r.Get("/user/{username}", getUserHandler(ctrl, render))
	})

	return r
}
