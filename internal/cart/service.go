package cart

import (
	"context"
	"fmt"

	"github.com/voltmart/voltmart/internal/products"
)

// ProductSource resolves live catalog entries for snapshotting into carts.
type ProductSource interface {
	Get(ctx context.Context, id int64) (*products.Product, error)
}

// Service applies cart mutations against session-scoped storage. Writes are
// last-write-wins; concurrent tabs simply overwrite each other.
type Service struct {
	storage  Storage
	products ProductSource
}

func NewService(storage Storage, products ProductSource) *Service {
	return &Service{storage: storage, products: products}
}

// Get returns the session's cart.
func (s *Service) Get(ctx context.Context, sessionID string) (Cart, error) {
	return s.storage.Load(ctx, sessionID)
}

// Add snapshots the product's current price into the cart and merges the
// quantity.
func (s *Service) Add(ctx context.Context, sessionID string, productID int64, quantity int) (Cart, error) {
	p, err := s.products.Get(ctx, productID)
	if err != nil {
		return Cart{}, err
	}

	c, err := s.storage.Load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}
	c = c.AddItem(Item{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     Price{DP: p.DPPrice, MRP: p.MRPPrice},
		Image:     p.ImageURL,
	}, quantity)

	if err := s.storage.Save(ctx, sessionID, c); err != nil {
		return Cart{}, fmt.Errorf("persist cart: %w", err)
	}
	return c, nil
}

// Remove drops a line from the cart.
func (s *Service) Remove(ctx context.Context, sessionID string, productID int64) (Cart, error) {
	c, err := s.storage.Load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}
	c = c.RemoveItem(productID)
	if err := s.storage.Save(ctx, sessionID, c); err != nil {
		return Cart{}, fmt.Errorf("persist cart: %w", err)
	}
	return c, nil
}

// UpdateQuantity sets a line quantity, removing the line at zero or below.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (Cart, error) {
	c, err := s.storage.Load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}
	c = c.UpdateQuantity(productID, quantity)
	if err := s.storage.Save(ctx, sessionID, c); err != nil {
		return Cart{}, fmt.Errorf("persist cart: %w", err)
	}
	return c, nil
}

// Clear empties the session's cart.
func (s *Service) Clear(ctx context.Context, sessionID string) (Cart, error) {
	if err := s.storage.Delete(ctx, sessionID); err != nil {
		return Cart{}, fmt.Errorf("clear cart: %w", err)
	}
	return Empty(), nil
}
