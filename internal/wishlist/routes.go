package wishlist

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.authz.RequireAuth)
		r.Get("/users/wishlist", h.List)
		r.Post("/users/wishlist/add", h.Add)
		r.Post("/users/wishlist/remove", h.Remove)
	})
}
