package products

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
	Get(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context, req ListProductsRequest) ([]Product, int, error)
	Create(ctx context.Context, p Product) (*Product, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (*Product, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const productColumns = "id, title, description, category, brand, image_url, dp_price, mrp_price, stock, tags, specifications, is_active, created_at, updated_at"

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Category, &p.Brand, &p.ImageURL,
		&p.DPPrice, &p.MRPPrice, &p.Stock, &p.Tags, &p.Specifications,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products WHERE id = $1", productColumns)
	return scanProduct(r.pool.QueryRow(ctx, query, id))
}

func (r *repository) List(ctx context.Context, req ListProductsRequest) ([]Product, int, error) {
	conditions := []string{"is_active = TRUE"}
	var args []interface{}
	argPos := 1

	if req.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argPos))
		args = append(args, req.Category)
		argPos++
	}
	if req.Brand != "" {
		conditions = append(conditions, fmt.Sprintf("brand ILIKE $%d", argPos))
		args = append(args, "%"+req.Brand+"%")
		argPos++
	}
	if req.MinPrice != nil {
		conditions = append(conditions, fmt.Sprintf("dp_price >= $%d", argPos))
		args = append(args, *req.MinPrice)
		argPos++
	}
	if req.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("dp_price <= $%d", argPos))
		args = append(args, *req.MaxPrice)
		argPos++
	}
	if len(req.Tags) > 0 {
		// Array overlap: any requested tag matches.
		conditions = append(conditions, fmt.Sprintf("tags && $%d", argPos))
		args = append(args, req.Tags)
		argPos++
	}
	if req.Search != "" {
		pattern := "%" + req.Search + "%"
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d OR brand ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, pattern)
		argPos++
	}

	whereClause := "WHERE " + strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM products %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	orderColumn := "created_at"
	switch req.SortBy {
	case "price":
		orderColumn = "dp_price"
	case "name":
		orderColumn = "title"
	}
	direction := "DESC"
	if req.SortOrder == "asc" {
		direction = "ASC"
	}

	query := fmt.Sprintf(
		"SELECT %s FROM products %s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		productColumns, whereClause, orderColumn, direction, argPos, argPos+1,
	)
	args = append(args, req.Limit, (req.Page-1)*req.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var result []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Category, &p.Brand, &p.ImageURL,
			&p.DPPrice, &p.MRPPrice, &p.Stock, &p.Tags, &p.Specifications,
			&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		result = append(result, p)
	}
	return result, total, rows.Err()
}

func (r *repository) Create(ctx context.Context, p Product) (*Product, error) {
	query := fmt.Sprintf(`
		INSERT INTO products (title, description, category, brand, image_url, dp_price, mrp_price, stock, tags, specifications, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE)
		RETURNING %s`, productColumns)
	return scanProduct(r.pool.QueryRow(ctx, query,
		p.Title, p.Description, p.Category, p.Brand, p.ImageURL,
		p.DPPrice, p.MRPPrice, p.Stock, p.Tags, p.Specifications,
	))
}

func (r *repository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*Product, error) {
	setClauses := []string{"updated_at = NOW()"}
	var args []interface{}
	argPos := 1

	for column, value := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	query := fmt.Sprintf(
		"UPDATE products SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setClauses, ", "), argPos, productColumns,
	)
	args = append(args, id)

	return scanProduct(r.pool.QueryRow(ctx, query, args...))
}
