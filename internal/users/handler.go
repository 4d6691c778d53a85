package users

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/voltmart/voltmart/internal/authz"
	"github.com/voltmart/voltmart/internal/platform/httpx"
	"github.com/voltmart/voltmart/internal/shared"
)

type Handler struct {
	logger    *slog.Logger
	service   *Service
	authz     authz.Middleware
	validator *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service, authz authz.Middleware) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		authz:     authz,
		validator: validator.New(),
	}
}

// List returns the paginated user table for the admin panel.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, limit, err := shared.ParsePageLimit(q, shared.DefaultPageSize)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	list, total, err := h.service.List(r.Context(), ListUsersRequest{
		Search: q.Get("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		h.logger.Error("list users failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	users := make([]listedUser, 0, len(list))
	for _, u := range list {
		registered := u.CreatedAt.Format(time.RFC3339)
		users = append(users, listedUser{
			ID:               u.ID,
			Email:            u.Email,
			DisplayName:      u.DisplayName,
			Role:             u.Role,
			RegistrationDate: &registered,
		})
	}

	meta := shared.NewPagination(page, limit, total)
	httpx.JSON(w, http.StatusOK, listResponse{
		Users: users,
		Pagination: listPagination{
			CurrentPage:     meta.CurrentPage,
			TotalPages:      meta.TotalPages,
			TotalUsers:      meta.TotalCount,
			Limit:           meta.Limit,
			HasNextPage:     meta.HasNextPage,
			HasPreviousPage: meta.HasPreviousPage,
		},
	})
}

// UpdateRole promotes or demotes a user.
func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req UpdateRoleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.ErrorDetails(w, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	actorID, _ := authz.CurrentUserID(r)
	updated, err := h.service.UpdateRole(r.Context(), actorID, req)
	if err != nil {
		h.logger.Error("update role failed", slog.Int64("user_id", req.UserID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, roleUpdateResponse{
		Success: true,
		User: updatedUser{
			ID:          updated.ID,
			Email:       updated.Email,
			DisplayName: updated.DisplayName,
			Role:        updated.Role,
			UpdatedAt:   updated.UpdatedAt.Format(time.RFC3339),
		},
		Message: "User role successfully updated to " + updated.Role,
	})
}

// UpdateProfile applies a partial profile update for the calling user.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid input data")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.ErrorDetails(w, http.StatusBadRequest, "Invalid input data", err.Error())
		return
	}

	userID, _ := authz.CurrentUserID(r)
	updated, err := h.service.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		h.logger.Error("update profile failed", slog.Int64("user_id", userID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, profileResponse{
		User: profileUser{
			ID:          updated.ID,
			Email:       updated.Email,
			DisplayName: updated.DisplayName,
			AvatarURL:   updated.AvatarURL,
			Role:        updated.Role,
		},
	})
}
