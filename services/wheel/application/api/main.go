package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/wheelhouse/wheelhouse/pkg/app"
	"github.com/wheelhouse/wheelhouse/pkg/auth"
	"github.com/wheelhouse/wheelhouse/services/wheel/application/handlers"
	appsvcs "github.com/wheelhouse/wheelhouse/services/wheel/application/services"
)

// WheelRoutes registers wheel endpoints on the provided chi router.
// Every route requires a resolved identity.
func WheelRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.Tokens, a.SessionStore, a.Logger))
		r.Route("/wheel-sets", func(r chi.Router) {
			r.Get("/", handlers.NewListWheelSetsHandler(svcs).Execute)
			r.Post("/", handlers.NewCreateWheelSetHandler(svcs).Execute)
			r.Post("/import", handlers.NewImportHandler(svcs).Execute)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handlers.NewGetWheelSetHandler(svcs).Execute)
				r.Patch("/", handlers.NewUpdateWheelSetHandler(svcs).Execute)
				r.Delete("/", handlers.NewDeleteWheelSetHandler(svcs).Execute)
				r.Post("/spin", handlers.NewSpinHandler(svcs).Execute)
				r.Put("/batch", handlers.NewBatchReplaceHandler(svcs).Execute)
				r.Post("/items", handlers.NewAddItemHandler(svcs).Execute)
				r.Post("/items:reorder", handlers.NewReorderItemsHandler(svcs).Execute)
				r.Patch("/items/{itemId}", handlers.NewUpdateItemHandler(svcs).Execute)
				r.Delete("/items/{itemId}", handlers.NewDeleteItemHandler(svcs).Execute)
			})
		})
	})
}
