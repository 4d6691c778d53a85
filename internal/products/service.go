package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/voltmart/voltmart/internal/platform/httpx"
)

// Service wraps catalog business rules.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns active products matching the requested filters.
func (s *Service) List(ctx context.Context, req ListProductsRequest) ([]Product, int, error) {
	return s.repo.List(ctx, req)
}

// Get returns an active product by ID. Soft-deleted products are reported as
// missing so the public catalog never resurrects them.
func (s *Service) Get(ctx context.Context, id int64) (*Product, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, httpx.NotFoundf("Product not found")
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if !p.IsActive {
		return nil, httpx.NotFoundf("Product not found")
	}
	return p, nil
}

// Create inserts a new active product.
func (s *Service) Create(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if !ValidCategory(req.Category) {
		return nil, httpx.Validationf("Invalid category: %s", req.Category)
	}
	if req.DPPrice > req.MRPPrice {
		return nil, httpx.Validationf("DP price cannot be higher than MRP price")
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	created, err := s.repo.Create(ctx, Product{
		Title:          req.Title,
		Description:    req.Description,
		Category:       Category(req.Category),
		Brand:          req.Brand,
		ImageURL:       req.ImageURL,
		DPPrice:        req.DPPrice,
		MRPPrice:       req.MRPPrice,
		Stock:          req.Stock,
		Tags:           tags,
		Specifications: req.Specifications,
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return created, nil
}

// Update applies only the provided fields and bumps updated_at.
func (s *Service) Update(ctx context.Context, req UpdateProductRequest) (*Product, error) {
	existing, err := s.repo.Get(ctx, req.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, httpx.NotFoundf("Product not found")
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	if req.Category != nil && !ValidCategory(*req.Category) {
		return nil, httpx.Validationf("Invalid category: %s", *req.Category)
	}

	dp := existing.DPPrice
	if req.DPPrice != nil {
		dp = *req.DPPrice
	}
	mrp := existing.MRPPrice
	if req.MRPPrice != nil {
		mrp = *req.MRPPrice
	}
	if dp > mrp {
		return nil, httpx.Validationf("DP price cannot be higher than MRP price")
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.DPPrice != nil {
		updates["dp_price"] = *req.DPPrice
	}
	if req.MRPPrice != nil {
		updates["mrp_price"] = *req.MRPPrice
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Tags != nil {
		updates["tags"] = *req.Tags
	}
	if req.Specifications != nil {
		updates["specifications"] = *req.Specifications
	}

	updated, err := s.repo.Update(ctx, req.ID, updates)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return updated, nil
}

// Delete soft-deletes a product. Deleting an already inactive product is an
// illegal transition and is rejected.
func (s *Service) Delete(ctx context.Context, productID int64) error {
	existing, err := s.repo.Get(ctx, productID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return httpx.NotFoundf("Product not found")
		}
		return fmt.Errorf("get product: %w", err)
	}
	if !existing.IsActive {
		return httpx.Validationf("Product is already deleted")
	}

	if _, err := s.repo.Update(ctx, productID, map[string]interface{}{"is_active": false}); err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	return nil
}
