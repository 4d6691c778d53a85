package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("record not found")

type Repository interface {
	Get(ctx context.Context, id int64) (*Order, error)
	AdminList(ctx context.Context, req AdminListRequest) ([]AdminOrder, int, error)
	ListForUser(ctx context.Context, req UserListRequest) ([]Order, int, error)
	ItemsForOrders(ctx context.Context, orderIDs []int64) (map[int64][]OrderItem, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Order, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const orderColumns = "id, user_id, status, total_amount, payment_status, payment_method, shipping_address, billing_address, notes, created_at, updated_at"

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.PaymentStatus, &o.PaymentMethod,
		&o.ShippingAddress, &o.BillingAddress, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*Order, error) {
	query := fmt.Sprintf("SELECT %s FROM orders WHERE id = $1", orderColumns)
	return scanOrder(r.pool.QueryRow(ctx, query, id))
}

func (r *repository) AdminList(ctx context.Context, req AdminListRequest) ([]AdminOrder, int, error) {
	var conditions []string
	var args []interface{}
	argPos := 1

	if req.Status != "" {
		conditions = append(conditions, fmt.Sprintf("o.status = $%d", argPos))
		args = append(args, req.Status)
		argPos++
	}
	if req.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("o.user_id = $%d", argPos))
		args = append(args, *req.UserID)
		argPos++
	}
	if req.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("o.created_at >= $%d", argPos))
		args = append(args, *req.StartDate)
		argPos++
	}
	if req.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("o.created_at <= $%d", argPos))
		args = append(args, *req.EndDate)
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(o.id) FROM orders o %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT o.id, o.user_id, o.status, o.total_amount, o.payment_status, o.payment_method,
		       o.shipping_address, o.billing_address, o.notes, o.created_at, o.updated_at,
		       u.id, u.email, u.display_name
		FROM orders o
		LEFT JOIN users u ON o.user_id = u.id
		%s
		ORDER BY o.created_at DESC
		LIMIT $%d OFFSET $%d`, whereClause, argPos, argPos+1)
	args = append(args, req.Limit, (req.Page-1)*req.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var result []AdminOrder
	for rows.Next() {
		var o AdminOrder
		var custID *int64
		var custEmail, custName *string
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.PaymentStatus, &o.PaymentMethod,
			&o.ShippingAddress, &o.BillingAddress, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
			&custID, &custEmail, &custName,
		); err != nil {
			return nil, 0, err
		}
		if custID != nil {
			o.Customer = &Customer{ID: *custID}
			if custEmail != nil {
				o.Customer.Email = *custEmail
			}
			if custName != nil {
				o.Customer.DisplayName = *custName
			}
		}
		result = append(result, o)
	}
	return result, total, rows.Err()
}

func (r *repository) ListForUser(ctx context.Context, req UserListRequest) ([]Order, int, error) {
	conditions := []string{"user_id = $1"}
	args := []interface{}{req.UserID}
	argPos := 2

	if req.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, req.Status)
		argPos++
	}

	whereClause := "WHERE " + strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(id) FROM orders %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count user orders: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM orders %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		orderColumns, whereClause, argPos, argPos+1,
	)
	args = append(args, req.Limit, (req.Page-1)*req.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list user orders: %w", err)
	}
	defer rows.Close()

	var result []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.PaymentStatus, &o.PaymentMethod,
			&o.ShippingAddress, &o.BillingAddress, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		result = append(result, o)
	}
	return result, total, rows.Err()
}

// ItemsForOrders batch-loads line items for a page of orders, joining the
// live catalog for brand, category and image.
func (r *repository) ItemsForOrders(ctx context.Context, orderIDs []int64) (map[int64][]OrderItem, error) {
	grouped := make(map[int64][]OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return grouped, nil
	}

	query := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.product_title, oi.quantity,
		       oi.unit_price, oi.total_price, p.brand, p.category, p.image_url
		FROM order_items oi
		LEFT JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.ProductTitle, &it.Quantity,
			&it.UnitPrice, &it.TotalPrice, &it.ProductBrand, &it.ProductCategory, &it.ProductImageURL,
		); err != nil {
			return nil, err
		}
		grouped[it.OrderID] = append(grouped[it.OrderID], it)
	}
	return grouped, rows.Err()
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status string) (*Order, error) {
	query := fmt.Sprintf(
		"UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING %s",
		orderColumns,
	)
	return scanOrder(r.pool.QueryRow(ctx, query, status, id))
}
