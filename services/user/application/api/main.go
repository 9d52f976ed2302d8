package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/wheelhouse/wheelhouse/pkg/app"
	"github.com/wheelhouse/wheelhouse/pkg/auth"
	"github.com/wheelhouse/wheelhouse/services/user/application/handlers"
	appsvcs "github.com/wheelhouse/wheelhouse/services/user/application/services"
)

// UserRoutes registers auth and profile endpoints on the provided chi router.
func UserRoutes(r chi.Router, a *app.Application, bcryptCost int) {
	svcs := appsvcs.New(a, bcryptCost)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler(svcs, a.SessionStore).Execute)
		r.Post("/login", handlers.NewLoginHandler(svcs, a.SessionStore).Execute)
		r.Post("/refresh", handlers.NewRefreshHandler(svcs).Execute)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.Tokens, a.SessionStore, a.Logger))
		r.Route("/me", func(r chi.Router) {
			r.Get("/", handlers.NewGetMeHandler(svcs).Execute)
			r.Patch("/", handlers.NewUpdateMeHandler(svcs).Execute)
		})
	})
}
