package products

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

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

// List serves the public catalog with filtering, sorting and pagination.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseListRequest(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	list, total, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("list products failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	items := make([]productJSON, 0, len(list))
	for _, p := range list {
		items = append(items, toProductJSON(p))
	}

	httpx.JSON(w, http.StatusOK, listResponse{
		Products:   items,
		Pagination: shared.NewPagination(req.Page, req.Limit, total),
	})
}

// Get serves a single active product.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProductJSON(*p))
}

// Create inserts a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.ErrorDetails(w, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create product failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProductJSON(*created))
}

// Update applies a partial product update.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid input data")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.ErrorDetails(w, http.StatusBadRequest, "Invalid input data", err.Error())
		return
	}

	updated, err := h.service.Update(r.Context(), req)
	if err != nil {
		h.logger.Error("update product failed", slog.Int64("product_id", req.ID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toUpdatedProductJSON(*updated))
}

// Delete soft-deletes a product.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var req DeleteProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.ErrorDetails(w, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), req.ProductID); err != nil {
		h.logger.Error("delete product failed", slog.Int64("product_id", req.ProductID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, deleteResponse{
		Success:   true,
		Message:   "Product deleted successfully",
		ProductID: req.ProductID,
	})
}

func (h *Handler) parseListRequest(r *http.Request) (ListProductsRequest, error) {
	q := r.URL.Query()

	page, limit, err := shared.ParsePageLimit(q, shared.DefaultPageSize)
	if err != nil {
		return ListProductsRequest{}, err
	}

	req := ListProductsRequest{
		Category: q.Get("category"),
		Brand:    q.Get("brand"),
		Search:   q.Get("search"),
		Page:     page,
		Limit:    limit,
	}

	if raw := q.Get("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return ListProductsRequest{}, httpx.Validationf("Invalid minPrice")
		}
		req.MinPrice = &v
	}
	if raw := q.Get("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return ListProductsRequest{}, httpx.Validationf("Invalid maxPrice")
		}
		req.MaxPrice = &v
	}

	// Tags arrive either repeated (?tags=a&tags=b) or comma separated.
	for _, raw := range q["tags"] {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				req.Tags = append(req.Tags, tag)
			}
		}
	}

	switch sortBy := q.Get("sortBy"); sortBy {
	case "", "price", "name", "created_at":
		req.SortBy = sortBy
	default:
		return ListProductsRequest{}, httpx.Validationf("Invalid sortBy: %s", sortBy)
	}
	switch sortOrder := q.Get("sortOrder"); sortOrder {
	case "", "asc", "desc":
		req.SortOrder = sortOrder
	default:
		return ListProductsRequest{}, httpx.Validationf("Invalid sortOrder: %s", sortOrder)
	}

	return req, nil
}
