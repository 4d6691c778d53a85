// Package analytics aggregates order history into customer summaries and
// the admin sales dashboard.
package analytics

import "time"

// Period selects the reporting window for customer analytics.
type Period string

const (
	Period7d  Period = "7d"
	Period30d Period = "30d"
	Period90d Period = "90d"
	Period1y  Period = "1y"

	DefaultPeriod = Period30d
)

func ValidPeriod(p string) bool {
	switch Period(p) {
	case Period7d, Period30d, Period90d, Period1y:
		return true
	}
	return false
}

// Start returns the window start relative to now.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case Period7d:
		return now.AddDate(0, 0, -7)
	case Period90d:
		return now.AddDate(0, 0, -90)
	case Period1y:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, 0, -30)
	}
}

// Rollup is the lifetime per-user aggregate maintained by the background
// refresher.
type Rollup struct {
	UserID          int64
	TotalOrders     int
	TotalSpent      float64
	OrdersPending   int
	OrdersCompleted int
	OrdersCancelled int
	LastOrderDate   *time.Time
}

// StatusBreakdown counts orders per lifecycle status.
type StatusBreakdown struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Shipped    int `json:"shipped"`
	Delivered  int `json:"delivered"`
	Cancelled  int `json:"cancelled"`
}

// ActivityItem is one recently ordered line for the customer view.
type ActivityItem struct {
	ProductTitle string
	Quantity     int
	TotalPrice   float64
	OrderDate    time.Time
	Status       string
}

// CategoryStat aggregates a customer's spend within one product category.
type CategoryStat struct {
	Category   string
	OrderCount int
	TotalSpent float64
}

// PeriodStats holds the window-scoped aggregates for one customer.
type PeriodStats struct {
	OrderCount         int
	TotalAmount        float64
	Breakdown          StatusBreakdown
	RecentActivity     []ActivityItem
	FavoriteCategories []CategoryStat
}

// DashboardSummary is the headline block of the admin dashboard.
type DashboardSummary struct {
	TotalSales     float64 `json:"totalSales"`
	TotalOrders    int     `json:"totalOrders"`
	TotalProducts  int     `json:"totalProducts"`
	TotalCustomers int     `json:"totalCustomers"`
}

// StatusCount pairs an order status with its total.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// TopProduct ranks a catalog entry by units sold.
type TopProduct struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	QuantitySold int     `json:"quantitySold"`
	Revenue      float64 `json:"revenue"`
}

// RecentOrder is a dashboard row joining the customer when known.
type RecentOrder struct {
	ID            int64     `json:"id"`
	TotalAmount   float64   `json:"totalAmount"`
	Status        string    `json:"status"`
	PaymentStatus *string   `json:"paymentStatus"`
	CreatedAt     time.Time `json:"-"`
	CustomerName  *string   `json:"customerName"`
	CustomerEmail *string   `json:"customerEmail"`
}

// RevenuePoint is one day of the dashboard revenue trend.
type RevenuePoint struct {
	Date       string  `json:"date"`
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"orderCount"`
}

// Dashboard is the full admin analytics payload.
type Dashboard struct {
	Summary            DashboardSummary  `json:"summary"`
	OrdersByStatus     []StatusCount     `json:"ordersByStatus"`
	TopSellingProducts []TopProduct      `json:"topSellingProducts"`
	RecentOrders       []recentOrderJSON `json:"recentOrders"`
	RevenueTrends      []RevenuePoint    `json:"revenueTrends"`
}

type recentOrderJSON struct {
	ID            int64   `json:"id"`
	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `json:"status"`
	PaymentStatus *string `json:"paymentStatus"`
	CreatedAt     string  `json:"createdAt"`
	CustomerName  *string `json:"customerName"`
	CustomerEmail *string `json:"customerEmail"`
}
