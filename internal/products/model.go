package products

import "time"

// Category is the fixed product taxonomy carried by the storefront.
type Category string

const (
	CategoryTwoWheelerBatteries  Category = "Two-Wheeler Batteries"
	CategoryFourWheelerBatteries Category = "Four-Wheeler Batteries"
	CategoryInverters            Category = "Inverters"
	CategorySolarPCU             Category = "Solar PCU"
	CategoryUPSBattery           Category = "UPS Battery"
	CategoryInverterTrolley      Category = "Inverter Trolley"
	CategoryBatteryTray          Category = "Battery Tray"
	CategoryOthers               Category = "Others"
)

// Categories lists every valid category value.
func Categories() []Category {
	return []Category{
		CategoryTwoWheelerBatteries,
		CategoryFourWheelerBatteries,
		CategoryInverters,
		CategorySolarPCU,
		CategoryUPSBattery,
		CategoryInverterTrolley,
		CategoryBatteryTray,
		CategoryOthers,
	}
}

// ValidCategory reports whether the value names a known category.
func ValidCategory(value string) bool {
	for _, c := range Categories() {
		if string(c) == value {
			return true
		}
	}
	return false
}

// Product represents a catalog entry. DPPrice is the dealer price the
// customer pays; MRPPrice is the list price, never below DPPrice. A product
// is soft-deleted by clearing IsActive and stays referenced by order history.
type Product struct {
	ID             int64
	Title          string
	Description    *string
	Category       Category
	Brand          string
	ImageURL       *string
	DPPrice        float64
	MRPPrice       float64
	Stock          int
	Tags           []string
	Specifications map[string]any
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// InStock reports whether the product can currently be ordered.
func (p Product) InStock() bool {
	return p.Stock > 0
}
