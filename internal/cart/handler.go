package cart

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/voltmart/voltmart/internal/platform/httpx"
	"github.com/voltmart/voltmart/internal/shared"
)

type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/cart", h.Get)
	r.Post("/cart/add", h.Add)
	r.Post("/cart/remove", h.Remove)
	r.Post("/cart/update", h.Update)
	r.Post("/cart/clear", h.Clear)
}

type addRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"omitempty,gt=0"`
}

type removeRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
}

type updateRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity"`
}

func sessionID(r *http.Request) (string, bool) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil || sess.ID == "" {
		return "", false
	}
	return sess.ID, true
}

// Get returns the current cart, empty when nothing was saved yet.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		httpx.JSON(w, http.StatusOK, Empty())
		return
	}
	c, err := h.service.Get(r.Context(), sid)
	if err != nil {
		h.logger.Error("load cart failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

// Add puts a product in the cart at its current dealer price.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "No session")
		return
	}

	var req addRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	c, err := h.service.Add(r.Context(), sid, req.ProductID, req.Quantity)
	if err != nil {
		h.logger.Error("add to cart failed", slog.Int64("product_id", req.ProductID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

// Remove drops a product line from the cart.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "No session")
		return
	}

	var req removeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	c, err := h.service.Remove(r.Context(), sid, req.ProductID)
	if err != nil {
		h.logger.Error("remove from cart failed", slog.Int64("product_id", req.ProductID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

// Update sets a line quantity; zero or below removes the line.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "No session")
		return
	}

	var req updateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	c, err := h.service.UpdateQuantity(r.Context(), sid, req.ProductID, req.Quantity)
	if err != nil {
		h.logger.Error("update cart failed", slog.Int64("product_id", req.ProductID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

// Clear empties the cart.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "No session")
		return
	}

	c, err := h.service.Clear(r.Context(), sid)
	if err != nil {
		h.logger.Error("clear cart failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}
