package wishlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/voltmart/voltmart/internal/platform/httpx"
)

// Service wraps wishlist rules.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add saves an active product to the user's wishlist. Inactive or missing
// products cannot be saved, and saving twice is a conflict.
func (s *Service) Add(ctx context.Context, userID, productID int64) (int64, error) {
	exists, err := s.repo.ActiveProductExists(ctx, productID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, httpx.NotFoundf("Product not found or is no longer available")
	}

	id, err := s.repo.Add(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			return 0, httpx.Duplicatef("Product is already in your wishlist")
		}
		return 0, fmt.Errorf("add wishlist item: %w", err)
	}
	return id, nil
}

// Remove deletes a wishlist entry. Removing a product that was never saved
// is not an error.
func (s *Service) Remove(ctx context.Context, userID, productID int64) error {
	return s.repo.Remove(ctx, userID, productID)
}

// List returns the user's saved products, newest first. Soft-deleted
// products are hidden but still count toward the total until removed.
func (s *Service) List(ctx context.Context, userID int64, page, limit int) ([]Item, int, error) {
	return s.repo.List(ctx, userID, page, limit)
}
