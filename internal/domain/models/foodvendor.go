// internal/domain/models/foodvendor.go
package models

// FoodVendor is an on-campus food outlet with its menu.
type FoodVendor struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Image        string     `json:"image,omitempty"`
	Rating       float64    `json:"rating"`
	CuisineType  string     `json:"cuisine_type"`
	Menu         []MenuItem `json:"menu"`
	DeliveryTime string     `json:"delivery_time"`
}

// MenuItem is a single orderable item. Price is non-negative dollars.
type MenuItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Image        string  `json:"image,omitempty"`
	Category     string  `json:"category"`
	IsVegetarian bool    `json:"is_vegetarian"`
	IsAvailable  bool    `json:"is_available"`
}
