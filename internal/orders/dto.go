package orders

import (
	"encoding/json"
	"time"

	"github.com/voltmart/voltmart/internal/shared"
)

type AdminListRequest struct {
	Status    string
	UserID    *int64
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

type UserListRequest struct {
	UserID int64
	Status string
	Page   int
	Limit  int
}

type UpdateStatusRequest struct {
	OrderID int64  `json:"orderId" validate:"required,gt=0"`
	Status  string `json:"status" validate:"required"`
}

// adminItemJSON and adminOrderJSON use the column-style field names the
// back-office expects.
type adminItemJSON struct {
	ID              int64   `json:"id"`
	ProductID       *int64  `json:"product_id"`
	ProductTitle    string  `json:"product_title"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	TotalPrice      float64 `json:"total_price"`
	ProductBrand    *string `json:"product_brand"`
	ProductCategory *string `json:"product_category"`
	ProductImageURL *string `json:"product_image_url"`
}

type adminCustomerJSON struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

type adminOrderJSON struct {
	ID              int64              `json:"id"`
	Status          string             `json:"status"`
	TotalAmount     float64            `json:"total_amount"`
	PaymentStatus   *string            `json:"payment_status"`
	PaymentMethod   *string            `json:"payment_method"`
	CreatedAt       string             `json:"created_at"`
	UpdatedAt       string             `json:"updated_at"`
	ShippingAddress json.RawMessage    `json:"shipping_address"`
	BillingAddress  json.RawMessage    `json:"billing_address"`
	Notes           *string            `json:"notes"`
	Customer        *adminCustomerJSON `json:"customer"`
	Items           []adminItemJSON    `json:"items"`
}

type adminPaginationJSON struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	TotalCount  int  `json:"total_count"`
	Limit       int  `json:"limit"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

type adminListResponse struct {
	Orders     []adminOrderJSON    `json:"orders"`
	Pagination adminPaginationJSON `json:"pagination"`
}

// userItemJSON and userOrderJSON are the customer-facing representations.
type userItemJSON struct {
	ID           int64   `json:"id"`
	ProductID    *int64  `json:"productId"`
	ProductTitle string  `json:"productTitle"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	TotalPrice   float64 `json:"totalPrice"`
	ImageURL     *string `json:"imageUrl"`
	Brand        *string `json:"brand"`
	Category     *string `json:"category"`
}

type userOrderJSON struct {
	ID              int64           `json:"id"`
	Status          string          `json:"status"`
	TotalAmount     float64         `json:"totalAmount"`
	PaymentMethod   *string         `json:"paymentMethod"`
	PaymentStatus   *string         `json:"paymentStatus"`
	ShippingAddress json.RawMessage `json:"shippingAddress"`
	BillingAddress  json.RawMessage `json:"billingAddress"`
	Notes           *string         `json:"notes"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
	Items           []userItemJSON  `json:"items"`
}

type userListResponse struct {
	Orders     []userOrderJSON   `json:"orders"`
	Pagination shared.Pagination `json:"pagination"`
}

type updatedOrderJSON struct {
	ID              int64           `json:"id"`
	Status          string          `json:"status"`
	TotalAmount     float64         `json:"totalAmount"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
	UserID          *int64          `json:"userId"`
	PaymentStatus   *string         `json:"paymentStatus"`
	PaymentMethod   *string         `json:"paymentMethod"`
	ShippingAddress json.RawMessage `json:"shippingAddress"`
	BillingAddress  json.RawMessage `json:"billingAddress"`
	Notes           *string         `json:"notes"`
}

type updateStatusResponse struct {
	Success bool             `json:"success"`
	Order   updatedOrderJSON `json:"order"`
}

func toAdminOrderJSON(o AdminOrder, items []OrderItem) adminOrderJSON {
	out := adminOrderJSON{
		ID:              o.ID,
		Status:          o.Status,
		TotalAmount:     o.TotalAmount,
		PaymentStatus:   o.PaymentStatus,
		PaymentMethod:   o.PaymentMethod,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       o.UpdatedAt.Format(time.RFC3339),
		ShippingAddress: o.ShippingAddress,
		BillingAddress:  o.BillingAddress,
		Notes:           o.Notes,
		Items:           make([]adminItemJSON, 0, len(items)),
	}
	if o.Customer != nil {
		out.Customer = &adminCustomerJSON{
			ID:          o.Customer.ID,
			Email:       o.Customer.Email,
			DisplayName: o.Customer.DisplayName,
		}
	}
	for _, it := range items {
		out.Items = append(out.Items, adminItemJSON{
			ID:              it.ID,
			ProductID:       it.ProductID,
			ProductTitle:    it.ProductTitle,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			TotalPrice:      it.TotalPrice,
			ProductBrand:    it.ProductBrand,
			ProductCategory: it.ProductCategory,
			ProductImageURL: it.ProductImageURL,
		})
	}
	return out
}

func toUserOrderJSON(o Order, items []OrderItem) userOrderJSON {
	out := userOrderJSON{
		ID:              o.ID,
		Status:          o.Status,
		TotalAmount:     o.TotalAmount,
		PaymentMethod:   o.PaymentMethod,
		PaymentStatus:   o.PaymentStatus,
		ShippingAddress: o.ShippingAddress,
		BillingAddress:  o.BillingAddress,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       o.UpdatedAt.Format(time.RFC3339),
		Items:           make([]userItemJSON, 0, len(items)),
	}
	for _, it := range items {
		out.Items = append(out.Items, userItemJSON{
			ID:           it.ID,
			ProductID:    it.ProductID,
			ProductTitle: it.ProductTitle,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			TotalPrice:   it.TotalPrice,
			ImageURL:     it.ProductImageURL,
			Brand:        it.ProductBrand,
			Category:     it.ProductCategory,
		})
	}
	return out
}

func toUpdatedOrderJSON(o Order) updatedOrderJSON {
	return updatedOrderJSON{
		ID:              o.ID,
		Status:          o.Status,
		TotalAmount:     o.TotalAmount,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       o.UpdatedAt.Format(time.RFC3339),
		UserID:          o.UserID,
		PaymentStatus:   o.PaymentStatus,
		PaymentMethod:   o.PaymentMethod,
		ShippingAddress: o.ShippingAddress,
		BillingAddress:  o.BillingAddress,
		Notes:           o.Notes,
	}
}
