package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Rollup(ctx context.Context, userID int64) (*Rollup, error)
	PeriodStats(ctx context.Context, userID int64, from, to time.Time) (*PeriodStats, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
	RefreshRollups(ctx context.Context) (int64, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// Rollup loads the lifetime aggregate row. A missing row yields an empty
// rollup, not an error; new customers simply have no history yet.
func (r *repository) Rollup(ctx context.Context, userID int64) (*Rollup, error) {
	roll := Rollup{UserID: userID}
	err := r.pool.QueryRow(ctx, `
		SELECT total_orders, total_spent, orders_pending, orders_completed, orders_cancelled, last_order_date
		FROM user_analytics WHERE user_id = $1`, userID,
	).Scan(
		&roll.TotalOrders, &roll.TotalSpent, &roll.OrdersPending,
		&roll.OrdersCompleted, &roll.OrdersCancelled, &roll.LastOrderDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &roll, nil
		}
		return nil, fmt.Errorf("load user rollup: %w", err)
	}
	return &roll, nil
}

func (r *repository) PeriodStats(ctx context.Context, userID int64, from, to time.Time) (*PeriodStats, error) {
	var stats PeriodStats

	rows, err := r.pool.Query(ctx, `
		SELECT status, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE user_id = $1 AND created_at >= $2 AND created_at <= $3
		GROUP BY status`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("period status breakdown: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		var amount float64
		if err := rows.Scan(&status, &count, &amount); err != nil {
			return nil, err
		}
		stats.OrderCount += count
		stats.TotalAmount += amount
		switch status {
		case "pending":
			stats.Breakdown.Pending = count
		case "processing":
			stats.Breakdown.Processing = count
		case "shipped":
			stats.Breakdown.Shipped = count
		case "delivered":
			stats.Breakdown.Delivered = count
		case "cancelled":
			stats.Breakdown.Cancelled = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	activityRows, err := r.pool.Query(ctx, `
		SELECT oi.product_title, oi.quantity, oi.total_price, o.created_at, o.status
		FROM order_items oi
		INNER JOIN orders o ON oi.order_id = o.id
		WHERE o.user_id = $1 AND o.created_at >= $2 AND o.created_at <= $3
		ORDER BY o.created_at DESC
		LIMIT 10`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	defer activityRows.Close()
	for activityRows.Next() {
		var it ActivityItem
		if err := activityRows.Scan(&it.ProductTitle, &it.Quantity, &it.TotalPrice, &it.OrderDate, &it.Status); err != nil {
			return nil, err
		}
		stats.RecentActivity = append(stats.RecentActivity, it)
	}
	if err := activityRows.Err(); err != nil {
		return nil, err
	}
	activityRows.Close()

	categoryRows, err := r.pool.Query(ctx, `
		SELECT p.category, COUNT(oi.id), COALESCE(SUM(oi.total_price), 0)
		FROM order_items oi
		INNER JOIN orders o ON oi.order_id = o.id
		INNER JOIN products p ON oi.product_id = p.id
		WHERE o.user_id = $1 AND o.created_at >= $2 AND o.created_at <= $3
		GROUP BY p.category
		ORDER BY COUNT(oi.id) DESC
		LIMIT 5`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("favorite categories: %w", err)
	}
	defer categoryRows.Close()
	for categoryRows.Next() {
		var cs CategoryStat
		if err := categoryRows.Scan(&cs.Category, &cs.OrderCount, &cs.TotalSpent); err != nil {
			return nil, err
		}
		stats.FavoriteCategories = append(stats.FavoriteCategories, cs)
	}
	return &stats, categoryRows.Err()
}

func (r *repository) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard

	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status != 'cancelled'),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM products WHERE is_active = TRUE),
			(SELECT COUNT(*) FROM users WHERE role = 'user')`,
	).Scan(&d.Summary.TotalSales, &d.Summary.TotalOrders, &d.Summary.TotalProducts, &d.Summary.TotalCustomers)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}

	statusRows, err := r.pool.Query(ctx, "SELECT status, COUNT(*) FROM orders GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("orders by status: %w", err)
	}
	defer statusRows.Close()
	d.OrdersByStatus = []StatusCount{}
	for statusRows.Next() {
		var sc StatusCount
		if err := statusRows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		d.OrdersByStatus = append(d.OrdersByStatus, sc)
	}
	if err := statusRows.Err(); err != nil {
		return nil, err
	}
	statusRows.Close()

	topRows, err := r.pool.Query(ctx, `
		SELECT p.id, p.title, p.brand, p.category, p.dp_price,
		       SUM(oi.quantity), SUM(oi.total_price)
		FROM order_items oi
		INNER JOIN products p ON oi.product_id = p.id
		INNER JOIN orders o ON oi.order_id = o.id
		WHERE o.status != 'cancelled'
		GROUP BY p.id, p.title, p.brand, p.category, p.dp_price
		ORDER BY SUM(oi.quantity) DESC
		LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("top selling products: %w", err)
	}
	defer topRows.Close()
	d.TopSellingProducts = []TopProduct{}
	for topRows.Next() {
		var tp TopProduct
		if err := topRows.Scan(&tp.ID, &tp.Title, &tp.Brand, &tp.Category, &tp.Price, &tp.QuantitySold, &tp.Revenue); err != nil {
			return nil, err
		}
		d.TopSellingProducts = append(d.TopSellingProducts, tp)
	}
	if err := topRows.Err(); err != nil {
		return nil, err
	}
	topRows.Close()

	recentRows, err := r.pool.Query(ctx, `
		SELECT o.id, o.total_amount, o.status, o.payment_status, o.created_at,
		       u.display_name, u.email
		FROM orders o
		LEFT JOIN users u ON o.user_id = u.id
		ORDER BY o.created_at DESC
		LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	defer recentRows.Close()
	d.RecentOrders = []recentOrderJSON{}
	for recentRows.Next() {
		var ro RecentOrder
		if err := recentRows.Scan(&ro.ID, &ro.TotalAmount, &ro.Status, &ro.PaymentStatus, &ro.CreatedAt, &ro.CustomerName, &ro.CustomerEmail); err != nil {
			return nil, err
		}
		d.RecentOrders = append(d.RecentOrders, recentOrderJSON{
			ID:            ro.ID,
			TotalAmount:   ro.TotalAmount,
			Status:        ro.Status,
			PaymentStatus: ro.PaymentStatus,
			CreatedAt:     ro.CreatedAt.Format(time.RFC3339),
			CustomerName:  ro.CustomerName,
			CustomerEmail: ro.CustomerEmail,
		})
	}
	if err := recentRows.Err(); err != nil {
		return nil, err
	}
	recentRows.Close()

	trendRows, err := r.pool.Query(ctx, `
		SELECT DATE(created_at)::text, SUM(total_amount), COUNT(*)
		FROM orders
		WHERE created_at >= NOW() - INTERVAL '30 days' AND status != 'cancelled'
		GROUP BY DATE(created_at)
		ORDER BY DATE(created_at) ASC`)
	if err != nil {
		return nil, fmt.Errorf("revenue trends: %w", err)
	}
	defer trendRows.Close()
	d.RevenueTrends = []RevenuePoint{}
	for trendRows.Next() {
		var rp RevenuePoint
		if err := trendRows.Scan(&rp.Date, &rp.Revenue, &rp.OrderCount); err != nil {
			return nil, err
		}
		d.RevenueTrends = append(d.RevenueTrends, rp)
	}
	return &d, trendRows.Err()
}

// RefreshRollups rebuilds the user_analytics table from order history in one
// statement. The background worker calls this on a schedule.
func (r *repository) RefreshRollups(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO user_analytics (user_id, total_orders, total_spent, orders_pending, orders_completed, orders_cancelled, last_order_date, updated_at)
		SELECT
			user_id,
			COUNT(*),
			COALESCE(SUM(total_amount) FILTER (WHERE status != 'cancelled'), 0),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'delivered'),
			COUNT(*) FILTER (WHERE status = 'cancelled'),
			MAX(created_at),
			NOW()
		FROM orders
		WHERE user_id IS NOT NULL
		GROUP BY user_id
		ON CONFLICT (user_id) DO UPDATE SET
			total_orders = EXCLUDED.total_orders,
			total_spent = EXCLUDED.total_spent,
			orders_pending = EXCLUDED.orders_pending,
			orders_completed = EXCLUDED.orders_completed,
			orders_cancelled = EXCLUDED.orders_cancelled,
			last_order_date = EXCLUDED.last_order_date,
			updated_at = NOW()`)
	if err != nil {
		return 0, fmt.Errorf("refresh user rollups: %w", err)
	}
	return tag.RowsAffected(), nil
}
