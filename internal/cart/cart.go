// Package cart keeps a per-session shopping cart with dealer-price totals.
package cart

// Price carries the dealer price the customer pays and the list price used
// to compute savings.
type Price struct {
	DP  float64 `json:"dp"`
	MRP float64 `json:"mrp"`
}

// Item is one product line in a cart.
type Item struct {
	ProductID int64   `json:"productId"`
	Title     string  `json:"title"`
	Price     Price   `json:"price"`
	Image     *string `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Cart is a value type; every mutation returns a new cart with totals
// recomputed.
type Cart struct {
	Items      []Item  `json:"items"`
	TotalItems int     `json:"totalItems"`
	Subtotal   float64 `json:"subtotal"`
	Savings    float64 `json:"savings"`
}

// Empty returns a cart with no items and zeroed totals.
func Empty() Cart {
	return Cart{Items: []Item{}}
}

func recompute(items []Item) Cart {
	c := Cart{Items: items}
	for _, it := range items {
		c.TotalItems += it.Quantity
		c.Subtotal += it.Price.DP * float64(it.Quantity)
		c.Savings += (it.Price.MRP - it.Price.DP) * float64(it.Quantity)
	}
	if c.Items == nil {
		c.Items = []Item{}
	}
	return c
}

// AddItem merges the quantity into an existing line or appends a new one.
func (c Cart) AddItem(item Item, quantity int) Cart {
	if quantity < 1 {
		quantity = 1
	}
	items := make([]Item, len(c.Items))
	copy(items, c.Items)

	merged := false
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		item.Quantity = quantity
		items = append(items, item)
	}
	return recompute(items)
}

// RemoveItem drops the line for the product. Removing an absent product is
// a no-op.
func (c Cart) RemoveItem(productID int64) Cart {
	items := make([]Item, 0, len(c.Items))
	for _, it := range c.Items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	return recompute(items)
}

// UpdateQuantity sets the line quantity; zero or negative removes the line.
func (c Cart) UpdateQuantity(productID int64, quantity int) Cart {
	if quantity <= 0 {
		return c.RemoveItem(productID)
	}
	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
		}
	}
	return recompute(items)
}

// Clear empties the cart.
func (c Cart) Clear() Cart {
	return Empty()
}

// InCart reports whether the product has a line.
func (c Cart) InCart(productID int64) bool {
	for _, it := range c.Items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// ItemQuantity returns the line quantity, zero when absent.
func (c Cart) ItemQuantity(productID int64) int {
	for _, it := range c.Items {
		if it.ProductID == productID {
			return it.Quantity
		}
	}
	return 0
}
