package products

import (
	"time"

	"github.com/voltmart/voltmart/internal/shared"
)

type ListProductsRequest struct {
	Category  string
	Brand     string
	MinPrice  *float64
	MaxPrice  *float64
	Tags      []string
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

type CreateProductRequest struct {
	Title          string         `json:"title" validate:"required,min=1,max=255"`
	Description    *string        `json:"description,omitempty"`
	Category       string         `json:"category" validate:"required"`
	Brand          string         `json:"brand" validate:"required,min=1,max=100"`
	ImageURL       *string        `json:"imageUrl,omitempty" validate:"omitempty,url"`
	DPPrice        float64        `json:"dpPrice" validate:"required,gt=0"`
	MRPPrice       float64        `json:"mrpPrice" validate:"required,gt=0"`
	Stock          int            `json:"stock" validate:"gte=0"`
	Specifications map[string]any `json:"specifications,omitempty"`
	Tags           []string       `json:"tags,omitempty"`
}

// UpdateProductRequest uses the column-style field names the admin form
// submits. Absent fields are left untouched.
type UpdateProductRequest struct {
	ID             int64           `json:"id" validate:"required,gt=0"`
	Title          *string         `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description    *string         `json:"description,omitempty"`
	Brand          *string         `json:"brand,omitempty" validate:"omitempty,min=1,max=100"`
	Category       *string         `json:"category,omitempty"`
	DPPrice        *float64        `json:"dp_price,omitempty" validate:"omitempty,gt=0"`
	MRPPrice       *float64        `json:"mrp_price,omitempty" validate:"omitempty,gt=0"`
	Stock          *int            `json:"stock,omitempty" validate:"omitempty,gte=0"`
	IsActive       *bool           `json:"is_active,omitempty"`
	ImageURL       *string         `json:"image_url,omitempty" validate:"omitempty,url"`
	Tags           *[]string       `json:"tags,omitempty"`
	Specifications *map[string]any `json:"specifications,omitempty"`
}

type DeleteProductRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
}

// productJSON is the public catalog representation.
type productJSON struct {
	ID             int64          `json:"id"`
	Title          string         `json:"title"`
	Description    *string        `json:"description"`
	Brand          string         `json:"brand"`
	Category       Category       `json:"category"`
	DPPrice        float64        `json:"dpPrice"`
	MRPPrice       float64        `json:"mrpPrice"`
	ImageURL       *string        `json:"imageUrl"`
	Stock          int            `json:"stock"`
	StockStatus    string         `json:"stockStatus"`
	IsActive       bool           `json:"isActive"`
	Tags           []string       `json:"tags"`
	Specifications map[string]any `json:"specifications"`
	CreatedAt      string         `json:"createdAt"`
	UpdatedAt      string         `json:"updatedAt"`
}

// updatedProductJSON mirrors the admin update contract, which reports
// column-style field names.
type updatedProductJSON struct {
	ID             int64          `json:"id"`
	Title          string         `json:"title"`
	Description    *string        `json:"description"`
	Brand          string         `json:"brand"`
	Category       Category       `json:"category"`
	DPPrice        float64        `json:"dp_price"`
	MRPPrice       float64        `json:"mrp_price"`
	Stock          int            `json:"stock"`
	IsActive       bool           `json:"is_active"`
	ImageURL       *string        `json:"image_url"`
	Tags           []string       `json:"tags"`
	Specifications map[string]any `json:"specifications"`
	CreatedAt      string         `json:"created_at"`
	UpdatedAt      string         `json:"updated_at"`
}

type listResponse struct {
	Products   []productJSON     `json:"products"`
	Pagination shared.Pagination `json:"pagination"`
}

type deleteResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ProductID int64  `json:"productId"`
}

func toProductJSON(p Product) productJSON {
	status := "out_of_stock"
	if p.InStock() {
		status = "in_stock"
	}
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return productJSON{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Brand:          p.Brand,
		Category:       p.Category,
		DPPrice:        p.DPPrice,
		MRPPrice:       p.MRPPrice,
		ImageURL:       p.ImageURL,
		Stock:          p.Stock,
		StockStatus:    status,
		IsActive:       p.IsActive,
		Tags:           tags,
		Specifications: p.Specifications,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
}

func toUpdatedProductJSON(p Product) updatedProductJSON {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return updatedProductJSON{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Brand:          p.Brand,
		Category:       p.Category,
		DPPrice:        p.DPPrice,
		MRPPrice:       p.MRPPrice,
		Stock:          p.Stock,
		IsActive:       p.IsActive,
		ImageURL:       p.ImageURL,
		Tags:           tags,
		Specifications: p.Specifications,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
}
