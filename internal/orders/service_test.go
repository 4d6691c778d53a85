package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltmart/voltmart/internal/platform/httpx"
)

type mockRepository struct {
	orders map[int64]Order
	items  map[int64][]OrderItem
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		orders: make(map[int64]Order),
		items:  make(map[int64][]OrderItem),
	}
}

func (m *mockRepository) Get(_ context.Context, id int64) (*Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (m *mockRepository) AdminList(_ context.Context, req AdminListRequest) ([]AdminOrder, int, error) {
	var list []AdminOrder
	for _, o := range m.orders {
		if req.Status != "" && o.Status != req.Status {
			continue
		}
		list = append(list, AdminOrder{Order: o})
	}
	return list, len(list), nil
}

func (m *mockRepository) ListForUser(_ context.Context, req UserListRequest) ([]Order, int, error) {
	var list []Order
	for _, o := range m.orders {
		if o.UserID == nil || *o.UserID != req.UserID {
			continue
		}
		if req.Status != "" && o.Status != req.Status {
			continue
		}
		list = append(list, o)
	}
	return list, len(list), nil
}

func (m *mockRepository) ItemsForOrders(_ context.Context, orderIDs []int64) (map[int64][]OrderItem, error) {
	out := make(map[int64][]OrderItem)
	for _, id := range orderIDs {
		if items, ok := m.items[id]; ok {
			out[id] = items
		}
	}
	return out, nil
}

func (m *mockRepository) UpdateStatus(_ context.Context, id int64, status string) (*Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	m.orders[id] = o
	return &o, nil
}

func seedOrder(repo *mockRepository, id, userID int64, status string) {
	uid := userID
	repo.orders[id] = Order{
		ID:          id,
		UserID:      &uid,
		Status:      status,
		TotalAmount: 12500,
		CreatedAt:   time.Now().Add(-time.Hour),
		UpdatedAt:   time.Now().Add(-time.Hour),
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := newMockRepository()
	seedOrder(repo, 1, 10, StatusPending)
	svc := NewService(repo)

	_, err := svc.UpdateStatus(context.Background(), UpdateStatusRequest{OrderID: 1, Status: "returned"})
	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.ErrValidation)
	assert.Equal(t, "Status must be one of: pending, processing, shipped, delivered, cancelled", err.Error())
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.UpdateStatus(context.Background(), UpdateStatusRequest{OrderID: 42, Status: StatusShipped})
	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.ErrNotFound)
	assert.Equal(t, "Order not found", err.Error())
}

func TestUpdateStatusOverwritesAnyStatus(t *testing.T) {
	repo := newMockRepository()
	seedOrder(repo, 1, 10, StatusDelivered)
	svc := NewService(repo)
	ctx := context.Background()

	// Moving an order backwards is allowed; fulfilment corrects mistakes
	// this way.
	updated, err := svc.UpdateStatus(ctx, UpdateStatusRequest{OrderID: 1, Status: StatusPending})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, updated.Status)

	updated, err = svc.UpdateStatus(ctx, UpdateStatusRequest{OrderID: 1, Status: StatusCancelled})
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, updated.Status)
}

func TestAdminListResolvesItems(t *testing.T) {
	repo := newMockRepository()
	seedOrder(repo, 1, 10, StatusPending)
	seedOrder(repo, 2, 11, StatusShipped)
	repo.items[1] = []OrderItem{{ID: 5, OrderID: 1, Quantity: 2}}
	svc := NewService(repo)

	list, items, total, err := svc.AdminList(context.Background(), AdminListRequest{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, 2, total)
	assert.Len(t, items[1], 1)
	assert.Empty(t, items[2])
}

func TestAdminListStatusFilter(t *testing.T) {
	repo := newMockRepository()
	seedOrder(repo, 1, 10, StatusPending)
	seedOrder(repo, 2, 11, StatusShipped)
	svc := NewService(repo)

	list, _, total, err := svc.AdminList(context.Background(), AdminListRequest{Status: StatusShipped, Page: 1, Limit: 20})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, int64(2), list[0].ID)
}

func TestListForUserScopesToOwner(t *testing.T) {
	repo := newMockRepository()
	seedOrder(repo, 1, 10, StatusPending)
	seedOrder(repo, 2, 11, StatusPending)
	svc := NewService(repo)

	list, _, total, err := svc.ListForUser(context.Background(), UserListRequest{UserID: 10, Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, int64(1), list[0].ID)
}
