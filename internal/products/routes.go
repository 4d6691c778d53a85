package products

import "github.com/go-chi/chi/v5"

// MountRoutes wires the public catalog and the admin product management
// endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/products/list", h.List)
	r.Get("/products/get", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(h.authz.RequireAdmin)
		r.Post("/products/create", h.Create)
		r.Post("/products/update", h.Update)
		r.Post("/products/delete", h.Delete)
	})
}
