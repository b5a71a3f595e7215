package entities

import (
	"time"
)

type FoodItem struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   Category  `json:"category"`
	ExpiryDate time.Time `json:"expiryDate"`
	Quantity   string    `json:"quantity"` // numeric string, parsed on demand
	Unit       string    `json:"unit"`
	AddedAt    time.Time `json:"addedAt"`
	Icon       string    `json:"icon,omitempty"`
}

// DisplayIcon falls back to the category glyph when no icon was picked.
func (f FoodItem) DisplayIcon() string {
	if f.Icon != "" {
		return f.Icon
	}
	return f.Category.Icon()
}
