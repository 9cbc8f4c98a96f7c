// internal/app/store/vendors/vendorstore.go
package vendorstore

import (
	"context"
	"errors"
	"sync"

	"github.com/campushub/campushub/internal/domain/models"
)

var ErrNotFound = errors.New("food vendor not found")

// Store owns the food-vendor collection. Ordering never depletes
// inventory; the store only resolves and prices requested items.
type Store struct {
	mu      sync.RWMutex
	vendors []models.FoodVendor
}

// OrderItem is one requested line of an order.
type OrderItem struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// OrderLine is a priced line of a confirmed order.
type OrderLine struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is the priced result of an order request.
type Order struct {
	VendorID   string      `json:"vendor_id"`
	VendorName string      `json:"vendor_name"`
	Items      []OrderLine `json:"items"`
	Total      float64     `json:"total"`
}

func New(seed []models.FoodVendor) *Store {
	s := &Store{vendors: make([]models.FoodVendor, 0, len(seed))}
	for _, v := range seed {
		s.vendors = append(s.vendors, copyVendor(v))
	}
	return s
}

// List returns all vendors in seed order.
func (s *Store) List(ctx context.Context) []models.FoodVendor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.FoodVendor, 0, len(s.vendors))
	for _, v := range s.vendors {
		out = append(out, copyVendor(v))
	}
	return out
}

func (s *Store) GetByID(ctx context.Context, id string) (models.FoodVendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.vendors {
		if v.ID == id {
			return copyVendor(v), nil
		}
	}
	return models.FoodVendor{}, ErrNotFound
}

// PriceOrder resolves the requested items against the vendor's menu and
// sums price × quantity. Unknown item IDs and items currently marked
// unavailable are skipped rather than rejected.
func (s *Store) PriceOrder(ctx context.Context, vendorID string, items []OrderItem) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var vendor *models.FoodVendor
	for i := range s.vendors {
		if s.vendors[i].ID == vendorID {
			vendor = &s.vendors[i]
			break
		}
	}
	if vendor == nil {
		return Order{}, ErrNotFound
	}

	order := Order{
		VendorID:   vendor.ID,
		VendorName: vendor.Name,
		Items:      []OrderLine{},
	}
	for _, it := range items {
		mi, ok := findMenuItem(vendor.Menu, it.ItemID)
		if !ok || !mi.IsAvailable {
			continue
		}
		order.Items = append(order.Items, OrderLine{
			Name:     mi.Name,
			Price:    mi.Price,
			Quantity: it.Quantity,
		})
		order.Total += mi.Price * float64(it.Quantity)
	}
	return order, nil
}

func findMenuItem(menu []models.MenuItem, id string) (models.MenuItem, bool) {
	for _, mi := range menu {
		if mi.ID == id {
			return mi, true
		}
	}
	return models.MenuItem{}, false
}

func copyVendor(v models.FoodVendor) models.FoodVendor {
	out := v
	out.Menu = append([]models.MenuItem(nil), v.Menu...)
	return out
}
