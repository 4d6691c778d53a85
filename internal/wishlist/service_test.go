package wishlist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltmart/voltmart/internal/platform/httpx"
	"github.com/voltmart/voltmart/internal/products"
)

type wishlistKey struct {
	userID    int64
	productID int64
}

type mockRepository struct {
	activeProducts map[int64]products.Product
	entries        map[wishlistKey]int64
	nextID         int64
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		activeProducts: make(map[int64]products.Product),
		entries:        make(map[wishlistKey]int64),
		nextID:         1,
	}
}

func (m *mockRepository) ActiveProductExists(_ context.Context, productID int64) (bool, error) {
	_, ok := m.activeProducts[productID]
	return ok, nil
}

func (m *mockRepository) Add(_ context.Context, userID, productID int64) (int64, error) {
	key := wishlistKey{userID, productID}
	if _, ok := m.entries[key]; ok {
		return 0, ErrDuplicate
	}
	id := m.nextID
	m.nextID++
	m.entries[key] = id
	return id, nil
}

func (m *mockRepository) Remove(_ context.Context, userID, productID int64) error {
	delete(m.entries, wishlistKey{userID, productID})
	return nil
}

func (m *mockRepository) List(_ context.Context, userID int64, _, _ int) ([]Item, int, error) {
	var items []Item
	total := 0
	for key := range m.entries {
		if key.userID != userID {
			continue
		}
		total++
		if p, ok := m.activeProducts[key.productID]; ok {
			items = append(items, Item{Product: p, AddedAt: time.Now()})
		}
	}
	return items, total, nil
}

func newWishlistService() (*Service, *mockRepository) {
	repo := newMockRepository()
	repo.activeProducts[1] = products.Product{ID: 1, Title: "Exide Xplore 12.5Ah", IsActive: true}
	return NewService(repo), repo
}

func TestAddMissingProduct(t *testing.T) {
	svc, _ := newWishlistService()

	_, err := svc.Add(context.Background(), 10, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.ErrNotFound)
	assert.Equal(t, "Product not found or is no longer available", err.Error())
}

func TestAddDuplicateConflicts(t *testing.T) {
	svc, _ := newWishlistService()
	ctx := context.Background()

	id, err := svc.Add(ctx, 10, 1)
	require.NoError(t, err)
	assert.NotZero(t, id)

	_, err = svc.Add(ctx, 10, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.ErrDuplicate)
	assert.Equal(t, "Product is already in your wishlist", err.Error())
}

func TestSameProductDifferentUsers(t *testing.T) {
	svc, _ := newWishlistService()
	ctx := context.Background()

	_, err := svc.Add(ctx, 10, 1)
	require.NoError(t, err)
	_, err = svc.Add(ctx, 11, 1)
	require.NoError(t, err)
}

func TestRemoveIsIdempotent(t *testing.T) {
	svc, _ := newWishlistService()
	ctx := context.Background()

	_, err := svc.Add(ctx, 10, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, 10, 1))
	require.NoError(t, svc.Remove(ctx, 10, 1))

	// Removed for one user only.
	_, err = svc.Add(ctx, 10, 1)
	require.NoError(t, err)
}

func TestListCountsHiddenProducts(t *testing.T) {
	svc, repo := newWishlistService()
	ctx := context.Background()

	_, err := svc.Add(ctx, 10, 1)
	require.NoError(t, err)

	// Soft-delete the product; the entry still counts until removed.
	delete(repo.activeProducts, 1)

	items, total, err := svc.List(ctx, 10, 1, 20)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, total)
}
