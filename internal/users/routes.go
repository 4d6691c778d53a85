package users

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.authz.RequireAdmin)
		r.Get("/users/list", h.List)
		r.Post("/users/update_role", h.UpdateRole)
	})
	r.Group(func(r chi.Router) {
		r.Use(h.authz.RequireAuth)
		r.Post("/users/profile/update", h.UpdateProfile)
	})
}
