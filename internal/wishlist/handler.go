package wishlist

import (
	"log/slog"
	"math"
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

type mutateRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

// statusResponse is the success/message envelope the wishlist mutations use.
type statusResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	WishlistItemID int64  `json:"wishlist_item_id,omitempty"`
}

type itemJSON struct {
	ID                int64          `json:"id"`
	Title             string         `json:"title"`
	Description       *string        `json:"description"`
	Brand             string         `json:"brand"`
	Category          string         `json:"category"`
	DPPrice           float64        `json:"dpPrice"`
	MRPPrice          float64        `json:"mrpPrice"`
	ImageURL          *string        `json:"imageUrl"`
	Stock             int            `json:"stock"`
	IsActive          bool           `json:"isActive"`
	Tags              []string       `json:"tags"`
	Specifications    map[string]any `json:"specifications"`
	AddedToWishlistAt string         `json:"addedToWishlistAt"`
}

type listPaginationJSON struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalItems      int  `json:"totalItems"`
	ItemsPerPage    int  `json:"itemsPerPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

type listResponse struct {
	Products   []itemJSON         `json:"products"`
	Pagination listPaginationJSON `json:"pagination"`
}

// Add saves a product to the authenticated user's wishlist.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.CurrentUserID(r)
	if !ok {
		httpx.JSON(w, http.StatusUnauthorized, statusResponse{Message: "Authentication required"})
		return
	}

	var req mutateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSON(w, http.StatusBadRequest, statusResponse{Message: "Invalid request data"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.JSON(w, http.StatusBadRequest, statusResponse{Message: "Invalid request data"})
		return
	}

	id, err := h.service.Add(r.Context(), userID, req.ProductID)
	if err != nil {
		status := httpx.StatusOf(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			h.logger.Error("add wishlist item failed", slog.Int64("user_id", userID), slog.Any("error", err))
			msg = "Internal server error"
		}
		httpx.JSON(w, status, statusResponse{Message: msg})
		return
	}

	httpx.JSON(w, http.StatusOK, statusResponse{
		Success:        true,
		Message:        "Product added to wishlist successfully",
		WishlistItemID: id,
	})
}

// Remove deletes a product from the wishlist. Succeeds even when the
// product was never saved.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.CurrentUserID(r)
	if !ok {
		httpx.JSON(w, http.StatusUnauthorized, statusResponse{Message: "Authentication required"})
		return
	}

	var req mutateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSON(w, http.StatusBadRequest, statusResponse{Message: "Invalid request data"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.JSON(w, http.StatusBadRequest, statusResponse{Message: "Invalid request data"})
		return
	}

	if err := h.service.Remove(r.Context(), userID, req.ProductID); err != nil {
		h.logger.Error("remove wishlist item failed", slog.Int64("user_id", userID), slog.Any("error", err))
		httpx.JSON(w, http.StatusInternalServerError, statusResponse{Message: "Internal server error"})
		return
	}

	httpx.JSON(w, http.StatusOK, statusResponse{
		Success: true,
		Message: "Product removed from wishlist",
	})
}

// List serves the paginated wishlist with live product data.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.CurrentUserID(r)
	if !ok {
		httpx.Message(w, http.StatusUnauthorized, "Authentication required to access wishlist")
		return
	}

	page, limit, err := shared.ParsePageLimit(r.URL.Query(), shared.DefaultPageSize)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	items, total, err := h.service.List(r.Context(), userID, page, limit)
	if err != nil {
		h.logger.Error("list wishlist failed", slog.Int64("user_id", userID), slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to fetch wishlist")
		return
	}

	out := make([]itemJSON, 0, len(items))
	for _, it := range items {
		p := it.Product
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		out = append(out, itemJSON{
			ID:                p.ID,
			Title:             p.Title,
			Description:       p.Description,
			Brand:             p.Brand,
			Category:          string(p.Category),
			DPPrice:           p.DPPrice,
			MRPPrice:          p.MRPPrice,
			ImageURL:          p.ImageURL,
			Stock:             p.Stock,
			IsActive:          p.IsActive,
			Tags:              tags,
			Specifications:    p.Specifications,
			AddedToWishlistAt: it.AddedAt.Format(time.RFC3339),
		})
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	httpx.JSON(w, http.StatusOK, listResponse{
		Products: out,
		Pagination: listPaginationJSON{
			CurrentPage:     page,
			TotalPages:      totalPages,
			TotalItems:      total,
			ItemsPerPage:    limit,
			HasNextPage:     page < totalPages,
			HasPreviousPage: page > 1,
		},
	})
}
