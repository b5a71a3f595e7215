package inventory

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/domain"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/entities"
)

// CategoryAll is the sentinel accepted by Search to skip category
// filtering.
const CategoryAll = "all"

const expiringWindowDays = 3

type (
	InventoryService interface {
		Add(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error)
		Remove(ctx context.Context, id string) error
		Search(ctx context.Context, term, category string) ([]domain.FoodItemResponse, error)
		ExpiringWithin(ctx context.Context, days int, asOf time.Time) ([]entities.FoodItem, error)
		Dashboard(ctx context.Context) (domain.DashboardResponse, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
	}
)

func NewInventoryService(inventoryRepository InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepository: inventoryRepository}
}

func (s *inventoryService) Add(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.FoodItemResponse{}, domain.ErrEmptyItemName
	}

	category := entities.Category(req.Category)
	if !category.Valid() {
		return domain.FoodItemResponse{}, domain.ErrInvalidCategory
	}

	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
	}

	quantity, err := strconv.ParseFloat(req.Quantity, 64)
	if err != nil || quantity <= 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
	}

	items, err := s.inventoryRepository.Load(ctx)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	now := time.Now()
	item := entities.FoodItem{
		ID:         uuid.New().String(),
		Name:       name,
		Category:   category,
		ExpiryDate: expiryDate,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		AddedAt:    now,
		Icon:       req.Icon,
	}

	// newest first
	items = append([]entities.FoodItem{item}, items...)

	if err := s.inventoryRepository.SaveAll(ctx, items); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return domain.NewFoodItemResponse(item, now), nil
}

// Remove deletes the item with the given id. Removing an id that is not
// present is a no-op, not an error.
func (s *inventoryService) Remove(ctx context.Context, id string) error {
	items, err := s.inventoryRepository.Load(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}

	return s.inventoryRepository.SaveAll(ctx, kept)
}

// Search filters by case-insensitive substring on the name, optionally
// intersected with an exact category. Store order is preserved.
func (s *inventoryService) Search(ctx context.Context, term, category string) ([]domain.FoodItemResponse, error) {
	items, err := s.inventoryRepository.Load(ctx)
	if err != nil {
		return nil, err
	}

	loweredTerm := strings.ToLower(term)
	now := time.Now()

	matches := make([]domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		if !strings.Contains(strings.ToLower(item.Name), loweredTerm) {
			continue
		}
		if category != "" && category != CategoryAll && string(item.Category) != category {
			continue
		}
		matches = append(matches, domain.NewFoodItemResponse(item, now))
	}

	return matches, nil
}

// ExpiringWithin returns items whose expiry date is on or before
// asOf+days. Already-expired items are included.
func (s *inventoryService) ExpiringWithin(ctx context.Context, days int, asOf time.Time) ([]entities.FoodItem, error) {
	items, err := s.inventoryRepository.Load(ctx)
	if err != nil {
		return nil, err
	}

	limit := asOf.AddDate(0, 0, days)

	expiring := make([]entities.FoodItem, 0, len(items))
	for _, item := range items {
		if !item.ExpiryDate.After(limit) {
			expiring = append(expiring, item)
		}
	}

	return expiring, nil
}

func (s *inventoryService) Dashboard(ctx context.Context) (domain.DashboardResponse, error) {
	items, err := s.inventoryRepository.Load(ctx)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	now := time.Now()
	limit := now.AddDate(0, 0, expiringWindowDays)

	expiring := make([]domain.FoodItemResponse, 0)
	for _, item := range items {
		if !item.ExpiryDate.After(limit) {
			expiring = append(expiring, domain.NewFoodItemResponse(item, now))
		}
	}

	return domain.DashboardResponse{
		TotalItems:    len(items),
		ExpiringItems: len(expiring),
		Expiring:      expiring,
	}, nil
}
