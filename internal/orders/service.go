package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/voltmart/voltmart/internal/platform/httpx"
)

// Service wraps order management rules.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AdminList returns a filtered page of orders with customer blocks and line
// items resolved.
func (s *Service) AdminList(ctx context.Context, req AdminListRequest) ([]AdminOrder, map[int64][]OrderItem, int, error) {
	list, total, err := s.repo.AdminList(ctx, req)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("admin list orders: %w", err)
	}

	ids := make([]int64, 0, len(list))
	for _, o := range list {
		ids = append(ids, o.ID)
	}
	items, err := s.repo.ItemsForOrders(ctx, ids)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("load order items: %w", err)
	}
	return list, items, total, nil
}

// ListForUser returns a customer's own order history.
func (s *Service) ListForUser(ctx context.Context, req UserListRequest) ([]Order, map[int64][]OrderItem, int, error) {
	list, total, err := s.repo.ListForUser(ctx, req)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("list user orders: %w", err)
	}

	ids := make([]int64, 0, len(list))
	for _, o := range list {
		ids = append(ids, o.ID)
	}
	items, err := s.repo.ItemsForOrders(ctx, ids)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("load order items: %w", err)
	}
	return list, items, total, nil
}

// UpdateStatus overwrites an order's status. Any status may replace any
// other; the fulfilment team corrects mistakes by moving orders backwards.
func (s *Service) UpdateStatus(ctx context.Context, req UpdateStatusRequest) (*Order, error) {
	if !ValidStatus(req.Status) {
		return nil, httpx.Validationf("Status must be one of: %s", strings.Join(Statuses(), ", "))
	}

	if _, err := s.repo.Get(ctx, req.OrderID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, httpx.NotFoundf("Order not found")
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	updated, err := s.repo.UpdateStatus(ctx, req.OrderID, req.Status)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return updated, nil
}
