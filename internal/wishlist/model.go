// Package wishlist lets customers bookmark products for later.
package wishlist

import (
	"time"

	"github.com/voltmart/voltmart/internal/products"
)

// Item is a saved product joined with its live catalog row.
type Item struct {
	Product products.Product
	AddedAt time.Time
}
