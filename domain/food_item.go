package domain

import (
	"errors"
	"time"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/entities"
)

var (
	MessageSuccessAddFoodItem    = "food item added successfully"
	MessageSuccessDeleteFoodItem = "food item deleted successfully"
	MessageSuccessGetFoodItems   = "food items retrieved successfully"
	MessageSuccessGetDashboard   = "dashboard retrieved successfully"

	MessageFailedAddFoodItem    = "failed to add food item"
	MessageFailedDeleteFoodItem = "failed to delete food item"
	MessageFailedGetFoodItems   = "failed to retrieve food items"
	MessageFailedGetDashboard   = "failed to retrieve dashboard"

	ErrEmptyItemName     = errors.New("item name must not be empty")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
	ErrInvalidQuantity   = errors.New("quantity must be a positive number")
	ErrInvalidCategory   = errors.New("unknown food category")
)

type (
	AddFoodItemRequest struct {
		Name       string `json:"name" validate:"required"`
		Category   string `json:"category" validate:"required"`
		ExpiryDate string `json:"expiry_date" validate:"required"` // YYYY-MM-DD
		Quantity   string `json:"quantity" validate:"required"`
		Unit       string `json:"unit" validate:"required"`
		Icon       string `json:"icon,omitempty"`
	}

	FoodItemResponse struct {
		ID         string            `json:"id"`
		Name       string            `json:"name"`
		Category   entities.Category `json:"category"`
		ExpiryDate time.Time         `json:"expiry_date"`
		Quantity   string            `json:"quantity"`
		Unit       string            `json:"unit"`
		AddedAt    time.Time         `json:"added_at"`
		Icon       string            `json:"icon"`

		DaysLeft int                 `json:"days_left"`
		Tier     entities.ExpiryTier `json:"tier"`
	}

	DashboardResponse struct {
		TotalItems    int                `json:"total_items"`
		ExpiringItems int                `json:"expiring_items"`
		Expiring      []FoodItemResponse `json:"expiring"`
	}
)

// NewFoodItemResponse classifies the item against now so every listing
// carries its expiry status.
func NewFoodItemResponse(item entities.FoodItem, now time.Time) FoodItemResponse {
	classification := entities.ClassifyExpiry(item.ExpiryDate, now)
	return FoodItemResponse{
		ID:         item.ID,
		Name:       item.Name,
		Category:   item.Category,
		ExpiryDate: item.ExpiryDate,
		Quantity:   item.Quantity,
		Unit:       item.Unit,
		AddedAt:    item.AddedAt,
		Icon:       item.DisplayIcon(),
		DaysLeft:   classification.DaysLeft,
		Tier:       classification.Tier,
	}
}
