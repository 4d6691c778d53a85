package products

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltmart/voltmart/internal/platform/httpx"
)

type mockRepository struct {
	products map[int64]*Product
	nextID   int64
}

func newMockRepository() *mockRepository {
	return &mockRepository{products: make(map[int64]*Product), nextID: 1}
}

func (m *mockRepository) Get(_ context.Context, id int64) (*Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockRepository) List(_ context.Context, req ListProductsRequest) ([]Product, int, error) {
	var result []Product
	for _, p := range m.products {
		if !p.IsActive {
			continue
		}
		if req.Category != "" && string(p.Category) != req.Category {
			continue
		}
		result = append(result, *p)
	}
	return result, len(result), nil
}

func (m *mockRepository) Create(_ context.Context, p Product) (*Product, error) {
	p.ID = m.nextID
	m.nextID++
	p.IsActive = true
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	m.products[p.ID] = &p
	cp := p
	return &cp, nil
}

func (m *mockRepository) Update(_ context.Context, id int64, updates map[string]interface{}) (*Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	for column, value := range updates {
		switch column {
		case "title":
			p.Title = value.(string)
		case "dp_price":
			p.DPPrice = value.(float64)
		case "mrp_price":
			p.MRPPrice = value.(float64)
		case "is_active":
			p.IsActive = value.(bool)
		case "stock":
			p.Stock = value.(int)
		case "category":
			p.Category = Category(value.(string))
		}
	}
	p.UpdatedAt = time.Now()
	cp := *p
	return &cp, nil
}

func seedProduct(t *testing.T, svc *Service, dp, mrp float64) *Product {
	t.Helper()
	created, err := svc.Create(context.Background(), CreateProductRequest{
		Title:    "Exide Xplore 12.5Ah",
		Category: string(CategoryTwoWheelerBatteries),
		Brand:    "Exide",
		DPPrice:  dp,
		MRPPrice: mrp,
		Stock:    10,
	})
	require.NoError(t, err)
	return created
}

func TestCreateRejectsDPAboveMRP(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.Create(context.Background(), CreateProductRequest{
		Title:    "Overpriced",
		Category: string(CategoryInverters),
		Brand:    "Luminous",
		DPPrice:  5000,
		MRPPrice: 4000,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, httpx.ErrValidation))
	assert.Equal(t, "DP price cannot be higher than MRP price", err.Error())
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.Create(context.Background(), CreateProductRequest{
		Title:    "Mystery Item",
		Category: "Gadgets",
		Brand:    "Acme",
		DPPrice:  100,
		MRPPrice: 120,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, httpx.ErrValidation))
	assert.Equal(t, "Invalid category: Gadgets", err.Error())
}

func TestCreateNormalisesNilTags(t *testing.T) {
	svc := NewService(newMockRepository())

	created := seedProduct(t, svc, 2450, 3100)
	require.NotNil(t, created.Tags)
	assert.Empty(t, created.Tags)
}

func TestGetHidesInactiveProduct(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	created := seedProduct(t, svc, 2450, 3100)
	repo.products[created.ID].IsActive = false

	_, err := svc.Get(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, httpx.ErrNotFound))
	assert.Equal(t, "Product not found", err.Error())
}

func TestUpdateChecksEffectivePrices(t *testing.T) {
	svc := NewService(newMockRepository())
	created := seedProduct(t, svc, 2450, 3100)

	// Raising DP above the stored MRP must fail even when MRP is untouched.
	newDP := 3500.0
	_, err := svc.Update(context.Background(), UpdateProductRequest{ID: created.ID, DPPrice: &newDP})
	require.Error(t, err)
	assert.Equal(t, "DP price cannot be higher than MRP price", err.Error())

	// Raising both together is fine.
	newMRP := 3600.0
	updated, err := svc.Update(context.Background(), UpdateProductRequest{ID: created.ID, DPPrice: &newDP, MRPPrice: &newMRP})
	require.NoError(t, err)
	assert.Equal(t, 3500.0, updated.DPPrice)
	assert.Equal(t, 3600.0, updated.MRPPrice)
}

func TestUpdateMissingProduct(t *testing.T) {
	svc := NewService(newMockRepository())

	title := "Renamed"
	_, err := svc.Update(context.Background(), UpdateProductRequest{ID: 99, Title: &title})
	require.Error(t, err)
	assert.True(t, errors.Is(err, httpx.ErrNotFound))
}

func TestDeleteIsSoftAndNotRepeatable(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	created := seedProduct(t, svc, 2450, 3100)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.False(t, repo.products[created.ID].IsActive)

	err := svc.Delete(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, httpx.ErrValidation))
	assert.Equal(t, "Product is already deleted", err.Error())
}

func TestListExcludesInactive(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	a := seedProduct(t, svc, 2450, 3100)
	seedProduct(t, svc, 5200, 6400)
	require.NoError(t, svc.Delete(context.Background(), a.ID))

	list, total, err := svc.List(context.Background(), ListProductsRequest{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsActive)
}
