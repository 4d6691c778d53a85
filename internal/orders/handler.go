package orders

import (
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
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

// AdminList serves the back-office order listing.
func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	req, err := parseAdminListRequest(r.URL.Query())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	list, items, total, err := h.service.AdminList(r.Context(), req)
	if err != nil {
		h.logger.Error("admin list orders failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	out := make([]adminOrderJSON, 0, len(list))
	for _, o := range list {
		out = append(out, toAdminOrderJSON(o, items[o.ID]))
	}

	totalPages := int(math.Ceil(float64(total) / float64(req.Limit)))
	httpx.JSON(w, http.StatusOK, adminListResponse{
		Orders: out,
		Pagination: adminPaginationJSON{
			CurrentPage: req.Page,
			TotalPages:  totalPages,
			TotalCount:  total,
			Limit:       req.Limit,
			HasNext:     req.Page < totalPages,
			HasPrevious: req.Page > 1,
		},
	})
}

// UpdateStatus overwrites an order's fulfilment status.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.ErrorDetails(w, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), req)
	if err != nil {
		h.logger.Error("update order status failed", slog.Int64("order_id", req.OrderID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, updateStatusResponse{
		Success: true,
		Order:   toUpdatedOrderJSON(*updated),
	})
}

// UserOrders serves the authenticated customer's own order history.
func (h *Handler) UserOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.CurrentUserID(r)
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	q := r.URL.Query()
	page, limit, err := shared.ParsePageLimit(q, 10)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	status := q.Get("status")
	if status != "" && !ValidStatus(status) {
		httpx.Error(w, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	list, items, total, err := h.service.ListForUser(r.Context(), UserListRequest{
		UserID: userID,
		Status: status,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		h.logger.Error("list user orders failed", slog.Int64("user_id", userID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	out := make([]userOrderJSON, 0, len(list))
	for _, o := range list {
		out = append(out, toUserOrderJSON(o, items[o.ID]))
	}

	httpx.JSON(w, http.StatusOK, userListResponse{
		Orders:     out,
		Pagination: shared.NewPagination(page, limit, total),
	})
}

func parseAdminListRequest(q url.Values) (AdminListRequest, error) {
	page, limit, err := shared.ParsePageLimit(q, shared.DefaultPageSize)
	if err != nil {
		return AdminListRequest{}, err
	}

	req := AdminListRequest{Page: page, Limit: limit}

	if status := q.Get("status"); status != "" {
		if !ValidStatus(status) {
			return AdminListRequest{}, httpx.Validationf("Invalid status: %s", status)
		}
		req.Status = status
	}
	if raw := q.Get("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 1 {
			return AdminListRequest{}, httpx.Validationf("Invalid user_id")
		}
		req.UserID = &id
	}
	if raw := q.Get("start_date"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return AdminListRequest{}, httpx.Validationf("Invalid start_date format")
		}
		req.StartDate = &t
	}
	if raw := q.Get("end_date"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return AdminListRequest{}, httpx.Validationf("Invalid end_date format")
		}
		req.EndDate = &t
	}
	return req, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
