package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
)

// UserSummary is the customer-facing analytics payload. Lifetime figures
// come from the maintained rollup; everything else is recomputed for the
// requested window.
type UserSummary struct {
	TotalOrders                int                `json:"totalOrders"`
	TotalAmountSpent           float64            `json:"totalAmountSpent"`
	OrdersInPeriod             int                `json:"ordersInPeriod"`
	AmountInPeriod             float64            `json:"amountInPeriod"`
	AverageOrderValue          float64            `json:"averageOrderValue"`
	OrderStatusBreakdown       StatusBreakdown    `json:"orderStatusBreakdown"`
	OrderStatusBreakdownPeriod StatusBreakdown    `json:"orderStatusBreakdownPeriod"`
	RecentActivity             []activityJSON     `json:"recentActivity"`
	FavoriteCategories         []categoryStatJSON `json:"favoriteCategories"`
	LastOrderDate              *string            `json:"lastOrderDate"`
	Period                     string             `json:"period"`
}

type activityJSON struct {
	ProductTitle string  `json:"productTitle"`
	Quantity     int     `json:"quantity"`
	TotalPrice   float64 `json:"totalPrice"`
	OrderDate    string  `json:"orderDate"`
	Status       string  `json:"status"`
}

type categoryStatJSON struct {
	Category   string  `json:"category"`
	OrderCount int     `json:"orderCount"`
	TotalSpent float64 `json:"totalSpent"`
}

// Service computes analytics, caching the dashboard and collapsing
// concurrent recomputations.
type Service struct {
	repo  Repository
	cache *Cache
	group singleflight.Group
}

func NewService(repo Repository, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// UserSummary builds the customer analytics for the requested period.
func (s *Service) UserSummary(ctx context.Context, userID int64, period Period) (*UserSummary, error) {
	now := time.Now()

	rollup, err := s.repo.Rollup(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats, err := s.repo.PeriodStats(ctx, userID, period.Start(now), now)
	if err != nil {
		return nil, err
	}

	avg := 0.0
	if stats.OrderCount > 0 {
		avg = stats.TotalAmount / float64(stats.OrderCount)
	}

	out := UserSummary{
		TotalOrders:      rollup.TotalOrders,
		TotalAmountSpent: rollup.TotalSpent,
		OrdersInPeriod:   stats.OrderCount,
		AmountInPeriod:   stats.TotalAmount,
		AverageOrderValue: avg,
		// The lifetime breakdown mixes rollup figures with live counts for
		// the transient statuses the rollup does not track.
		OrderStatusBreakdown: StatusBreakdown{
			Pending:    rollup.OrdersPending,
			Processing: stats.Breakdown.Processing,
			Shipped:    stats.Breakdown.Shipped,
			Delivered:  rollup.OrdersCompleted,
			Cancelled:  rollup.OrdersCancelled,
		},
		OrderStatusBreakdownPeriod: stats.Breakdown,
		RecentActivity:             make([]activityJSON, 0, len(stats.RecentActivity)),
		FavoriteCategories:         make([]categoryStatJSON, 0, len(stats.FavoriteCategories)),
		Period:                     string(period),
	}
	for _, it := range stats.RecentActivity {
		out.RecentActivity = append(out.RecentActivity, activityJSON{
			ProductTitle: it.ProductTitle,
			Quantity:     it.Quantity,
			TotalPrice:   it.TotalPrice,
			OrderDate:    it.OrderDate.Format(time.RFC3339),
			Status:       it.Status,
		})
	}
	for _, cs := range stats.FavoriteCategories {
		out.FavoriteCategories = append(out.FavoriteCategories, categoryStatJSON{
			Category:   cs.Category,
			OrderCount: cs.OrderCount,
			TotalSpent: cs.TotalSpent,
		})
	}
	if rollup.LastOrderDate != nil {
		formatted := rollup.LastOrderDate.Format(time.RFC3339)
		out.LastOrderDate = &formatted
	}
	return &out, nil
}

// Dashboard returns the admin sales dashboard, served from cache when warm.
// Concurrent cold-cache requests share a single database pass.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	key, err := s.cache.BuildKey(ctx, "analytics", "dashboard")
	if err != nil {
		return nil, fmt.Errorf("build dashboard cache key: %w", err)
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		var d Dashboard
		err := s.cache.FetchJSON(ctx, key, &d, func(ctx context.Context) (interface{}, error) {
			return s.repo.Dashboard(ctx)
		})
		if err != nil {
			return nil, err
		}
		return &d, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Dashboard), nil
}

// RefreshRollups rebuilds the lifetime aggregates and invalidates the
// dashboard cache.
func (s *Service) RefreshRollups(ctx context.Context) (int64, error) {
	n, err := s.repo.RefreshRollups(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.cache.Bump(ctx); err != nil {
		return n, fmt.Errorf("bump analytics cache: %w", err)
	}
	return n, nil
}
