package analytics

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/voltmart/voltmart/internal/authz"
	"github.com/voltmart/voltmart/internal/platform/httpx"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
	authz   authz.Middleware
}

func NewHandler(logger *slog.Logger, service *Service, authz authz.Middleware) *Handler {
	return &Handler{logger: logger, service: service, authz: authz}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.authz.RequireAuth)
		r.Get("/users/analytics", h.UserAnalytics)
	})
	r.Group(func(r chi.Router) {
		r.Use(h.authz.RequireAdmin)
		r.Get("/analytics/dashboard", h.Dashboard)
	})
}

// UserAnalytics serves the customer's spending summary for a period.
func (h *Handler) UserAnalytics(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.CurrentUserID(r)
	if !ok {
		httpx.Message(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	period := DefaultPeriod
	if raw := r.URL.Query().Get("period"); raw != "" {
		if !ValidPeriod(raw) {
			httpx.Message(w, http.StatusBadRequest, "Invalid period. Must be one of: 7d, 30d, 90d, 1y")
			return
		}
		period = Period(raw)
	}

	summary, err := h.service.UserSummary(r.Context(), userID, period)
	if err != nil {
		h.logger.Error("user analytics failed", slog.Int64("user_id", userID), slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}

// Dashboard serves the cached admin sales dashboard.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.logger.Error("dashboard analytics failed", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to fetch dashboard analytics")
		return
	}
	httpx.JSON(w, http.StatusOK, d)
}
