// Package orders implements order management for administrators and
// order history for customers.
package orders

import (
	"encoding/json"
	"time"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Statuses lists every order status in lifecycle order.
func Statuses() []string {
	return []string{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is a placed order. Addresses are stored as opaque JSON documents
// captured at checkout time.
type Order struct {
	ID              int64
	UserID          *int64
	Status          string
	TotalAmount     float64
	PaymentStatus   *string
	PaymentMethod   *string
	ShippingAddress json.RawMessage
	BillingAddress  json.RawMessage
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Customer is the joined user block the admin listing attaches to an order.
type Customer struct {
	ID          int64
	Email       string
	DisplayName string
}

// AdminOrder is an order with its customer resolved for the back office.
type AdminOrder struct {
	Order
	Customer *Customer
}

// OrderItem is an immutable line snapshot taken when the order was placed.
// Product fields are joined from the live catalog and may be nil when the
// product has since been removed.
type OrderItem struct {
	ID              int64
	OrderID         int64
	ProductID       *int64
	ProductTitle    string
	Quantity        int
	UnitPrice       float64
	TotalPrice      float64
	ProductBrand    *string
	ProductCategory *string
	ProductImageURL *string
}
