// Package authz guards HTTP endpoints with session-derived role checks.
package authz

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/voltmart/voltmart/internal/platform/httpx"
	"github.com/voltmart/voltmart/internal/shared"
)

// RoleSource resolves the role of an authenticated user.
type RoleSource interface {
	RoleOf(ctx context.Context, userID int64) (string, error)
}

// Middleware wires authorization helpers for HTTP handlers.
type Middleware struct {
	Roles  RoleSource
	Logger *slog.Logger
}

// RequireAuth ensures the request carries an authenticated session.
func (m Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUserID(r); !ok {
			httpx.Error(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin ensures the current user is authenticated and holds the admin role.
func (m Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := CurrentUserID(r)
		if !ok {
			httpx.Error(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		role, err := m.Roles.RoleOf(r.Context(), userID)
		if err != nil {
			if m.Logger != nil {
				m.Logger.Error("resolve role", slog.Int64("user_id", userID), slog.Any("error", err))
			}
			httpx.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if role != shared.RoleAdmin {
			httpx.Error(w, http.StatusForbidden, "Access denied. Admin role required.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CurrentUserID extracts the authenticated user ID from the request session.
func CurrentUserID(r *http.Request) (int64, bool) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		return 0, false
	}
	raw := strings.TrimSpace(sess.User())
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
