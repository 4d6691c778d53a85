package wishlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voltmart/voltmart/internal/products"
)

const uniqueViolation = "23505"

var ErrDuplicate = errors.New("already in wishlist")

type Repository interface {
	ActiveProductExists(ctx context.Context, productID int64) (bool, error)
	Add(ctx context.Context, userID, productID int64) (int64, error)
	Remove(ctx context.Context, userID, productID int64) error
	List(ctx context.Context, userID int64, page, limit int) ([]Item, int, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) ActiveProductExists(ctx context.Context, productID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM products WHERE id = $1 AND is_active = TRUE)",
		productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check product: %w", err)
	}
	return exists, nil
}

// Add inserts a wishlist entry, relying on the (user_id, product_id) unique
// constraint to reject duplicates.
func (r *repository) Add(ctx context.Context, userID, productID int64) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		"INSERT INTO user_wishlists (user_id, product_id) VALUES ($1, $2) RETURNING id",
		userID, productID,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("insert wishlist item: %w", err)
	}
	return id, nil
}

func (r *repository) Remove(ctx context.Context, userID, productID int64) error {
	_, err := r.pool.Exec(ctx,
		"DELETE FROM user_wishlists WHERE user_id = $1 AND product_id = $2",
		userID, productID,
	)
	if err != nil {
		return fmt.Errorf("delete wishlist item: %w", err)
	}
	return nil
}

func (r *repository) List(ctx context.Context, userID int64, page, limit int) ([]Item, int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(product_id) FROM user_wishlists WHERE user_id = $1",
		userID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count wishlist items: %w", err)
	}

	query := `
		SELECT p.id, p.title, p.description, p.category, p.brand, p.image_url,
		       p.dp_price, p.mrp_price, p.stock, p.tags, p.specifications,
		       p.is_active, p.created_at, p.updated_at,
		       w.created_at
		FROM user_wishlists w
		INNER JOIN products p ON w.product_id = p.id
		WHERE w.user_id = $1 AND p.is_active = TRUE
		ORDER BY w.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list wishlist items: %w", err)
	}
	defer rows.Close()

	var result []Item
	for rows.Next() {
		var it Item
		var p products.Product
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Category, &p.Brand, &p.ImageURL,
			&p.DPPrice, &p.MRPPrice, &p.Stock, &p.Tags, &p.Specifications,
			&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
			&it.AddedAt,
		); err != nil {
			return nil, 0, err
		}
		it.Product = p
		result = append(result, it)
	}
	return result, total, rows.Err()
}
