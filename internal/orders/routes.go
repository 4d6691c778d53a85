package orders

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.authz.RequireAdmin)
		r.Get("/orders/list", h.AdminList)
		r.Post("/orders/update_status", h.UpdateStatus)
	})
	r.Group(func(r chi.Router) {
		r.Use(h.authz.RequireAuth)
		r.Get("/users/orders", h.UserOrders)
	})
}
