package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/voltmart/voltmart/internal/analytics"
	"github.com/voltmart/voltmart/internal/auth"
	"github.com/voltmart/voltmart/internal/cart"
	"github.com/voltmart/voltmart/internal/orders"
	"github.com/voltmart/voltmart/internal/products"
	"github.com/voltmart/voltmart/internal/shared"
	"github.com/voltmart/voltmart/internal/users"
	"github.com/voltmart/voltmart/internal/wishlist"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager
	CSRFManager    *shared.CSRFManager

	AuthHandler      *auth.Handler
	ProductsHandler  *products.Handler
	OrdersHandler    *orders.Handler
	UsersHandler     *users.Handler
	WishlistHandler  *wishlist.Handler
	AnalyticsHandler *analytics.Handler
	CartHandler      *cart.Handler
}

// NewRouter constructs the chi.Router serving the storefront API.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		CSRFManager:    params.CSRFManager,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/_api", func(r chi.Router) {
		params.AuthHandler.MountRoutes(r)
		params.ProductsHandler.MountRoutes(r)
		params.OrdersHandler.MountRoutes(r)
		params.UsersHandler.MountRoutes(r)
		params.WishlistHandler.MountRoutes(r)
		params.AnalyticsHandler.MountRoutes(r)
		params.CartHandler.MountRoutes(r)
	})

	return r
}
