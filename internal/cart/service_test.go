package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltmart/voltmart/internal/platform/httpx"
	"github.com/voltmart/voltmart/internal/products"
)

type stubProducts struct {
	byID map[int64]*products.Product
}

func (s *stubProducts) Get(_ context.Context, id int64) (*products.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, httpx.NotFoundf("Product not found")
	}
	return p, nil
}

func newCartService() *Service {
	return NewService(NewMemoryStorage(), &stubProducts{byID: map[int64]*products.Product{
		1: {ID: 1, Title: "Exide Xplore 12.5Ah", DPPrice: 2450, MRPPrice: 3100, IsActive: true},
	}})
}

func TestServiceAddSnapshotsPrice(t *testing.T) {
	svc := newCartService()

	c, err := svc.Add(context.Background(), "sess", 1, 2)
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "Exide Xplore 12.5Ah", c.Items[0].Title)
	assert.Equal(t, 4900.0, c.Subtotal)
	assert.Equal(t, 1300.0, c.Savings)
}

func TestServiceAddUnknownProduct(t *testing.T) {
	svc := newCartService()

	_, err := svc.Add(context.Background(), "sess", 99, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestServiceUpdateAndRemovePersist(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "sess", 1, 1)
	require.NoError(t, err)

	c, err := svc.UpdateQuantity(ctx, "sess", 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, c.TotalItems)

	c, err = svc.Remove(ctx, "sess", 1)
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	// A fresh load sees the persisted state, not a stale copy.
	c, err = svc.Get(ctx, "sess")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestServiceClear(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "sess", 1, 2)
	require.NoError(t, err)

	c, err := svc.Clear(ctx, "sess")
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	c, err = svc.Get(ctx, "sess")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}
