package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	rollup         Rollup
	stats          PeriodStats
	dashboard      Dashboard
	dashboardCalls int
	refreshed      int64
}

func (s *stubRepository) Rollup(_ context.Context, _ int64) (*Rollup, error) {
	r := s.rollup
	return &r, nil
}

func (s *stubRepository) PeriodStats(_ context.Context, _ int64, _, _ time.Time) (*PeriodStats, error) {
	st := s.stats
	return &st, nil
}

func (s *stubRepository) Dashboard(_ context.Context) (*Dashboard, error) {
	s.dashboardCalls++
	d := s.dashboard
	return &d, nil
}

func (s *stubRepository) RefreshRollups(_ context.Context) (int64, error) {
	return s.refreshed, nil
}

func newTestCache(t *testing.T) (*Cache, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, time.Minute), client
}

func TestUserSummaryMixesRollupAndLiveCounts(t *testing.T) {
	last := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	repo := &stubRepository{
		rollup: Rollup{
			UserID:          10,
			TotalOrders:     8,
			TotalSpent:      42000,
			OrdersPending:   1,
			OrdersCompleted: 5,
			OrdersCancelled: 2,
			LastOrderDate:   &last,
		},
		stats: PeriodStats{
			OrderCount:  4,
			TotalAmount: 18000,
			Breakdown:   StatusBreakdown{Pending: 1, Processing: 2, Shipped: 1},
			RecentActivity: []ActivityItem{
				{ProductTitle: "Luminous Zelio 1100", Quantity: 1, TotalPrice: 6500, OrderDate: last, Status: "delivered"},
			},
			FavoriteCategories: []CategoryStat{
				{Category: "Inverters", OrderCount: 3, TotalSpent: 15000},
			},
		},
	}
	svc := NewService(repo, nil)

	out, err := svc.UserSummary(context.Background(), 10, Period30d)
	require.NoError(t, err)

	assert.Equal(t, 8, out.TotalOrders)
	assert.Equal(t, 42000.0, out.TotalAmountSpent)
	assert.Equal(t, 4, out.OrdersInPeriod)
	assert.Equal(t, 18000.0, out.AmountInPeriod)
	assert.Equal(t, 4500.0, out.AverageOrderValue)

	// Lifetime breakdown takes pending, delivered and cancelled from the
	// rollup and the transient statuses from the live window.
	assert.Equal(t, StatusBreakdown{Pending: 1, Processing: 2, Shipped: 1, Delivered: 5, Cancelled: 2}, out.OrderStatusBreakdown)
	assert.Equal(t, repo.stats.Breakdown, out.OrderStatusBreakdownPeriod)

	require.Len(t, out.RecentActivity, 1)
	assert.Equal(t, "Luminous Zelio 1100", out.RecentActivity[0].ProductTitle)
	require.Len(t, out.FavoriteCategories, 1)
	assert.Equal(t, "Inverters", out.FavoriteCategories[0].Category)
	require.NotNil(t, out.LastOrderDate)
	assert.Equal(t, last.Format(time.RFC3339), *out.LastOrderDate)
	assert.Equal(t, "30d", out.Period)
}

func TestUserSummaryZeroOrders(t *testing.T) {
	svc := NewService(&stubRepository{}, nil)

	out, err := svc.UserSummary(context.Background(), 10, DefaultPeriod)
	require.NoError(t, err)
	assert.Zero(t, out.AverageOrderValue)
	assert.Nil(t, out.LastOrderDate)
	assert.NotNil(t, out.RecentActivity)
	assert.NotNil(t, out.FavoriteCategories)
}

func TestDashboardServedFromCache(t *testing.T) {
	repo := &stubRepository{
		dashboard: Dashboard{Summary: DashboardSummary{TotalSales: 99000, TotalOrders: 12}},
	}
	cache, _ := newTestCache(t)
	svc := NewService(repo, cache)
	ctx := context.Background()

	first, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 99000.0, first.Summary.TotalSales)
	assert.Equal(t, 1, repo.dashboardCalls)

	// Warm cache, no second database pass.
	second, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, 1, repo.dashboardCalls)
}

func TestRefreshBumpsDashboardCache(t *testing.T) {
	repo := &stubRepository{refreshed: 3}
	cache, _ := newTestCache(t)
	svc := NewService(repo, cache)
	ctx := context.Background()

	_, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, repo.dashboardCalls)

	n, err := svc.RefreshRollups(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.dashboardCalls)
}

func TestPeriodWindows(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.AddDate(0, 0, -7), Period7d.Start(now))
	assert.Equal(t, now.AddDate(0, 0, -30), Period30d.Start(now))
	assert.Equal(t, now.AddDate(0, 0, -90), Period90d.Start(now))
	assert.Equal(t, now.AddDate(-1, 0, 0), Period1y.Start(now))

	assert.True(t, ValidPeriod("7d"))
	assert.False(t, ValidPeriod("14d"))
	assert.False(t, ValidPeriod(""))
}
