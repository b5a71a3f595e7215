package recipes

import (
	"context"
	"time"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/domain"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/entities"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/inventory"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/settings"
)

const (
	priorityWindowDays = 3
	maxSupportingItems = 10
)

type (
	RecipeService interface {
		Cached(ctx context.Context) (domain.RecipeListResponse, error)
		// Refresh returns the cached list when force is false; when
		// force is true it calls the generator, overwrites the cache
		// for the current language and advances the once-per-day gate.
		Refresh(ctx context.Context, force bool) (domain.RecipeListResponse, error)
		StartAdSession(ctx context.Context) domain.AdSessionResponse
		CompleteAdSession(ctx context.Context, sessionID string) (domain.RecipeListResponse, error)
	}

	recipeService struct {
		recipeRepository    RecipeRepository
		inventoryRepository inventory.InventoryRepository
		settingsRepository  settings.SettingsRepository
		generator           RecipeGenerator
		adSessions          *adSessionManager
		now                 func() time.Time
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	inventoryRepository inventory.InventoryRepository,
	settingsRepository settings.SettingsRepository,
	generator RecipeGenerator,
) RecipeService {
	return &recipeService{
		recipeRepository:    recipeRepository,
		inventoryRepository: inventoryRepository,
		settingsRepository:  settingsRepository,
		generator:           generator,
		adSessions:          newAdSessionManager(),
		now:                 time.Now,
	}
}

// localDay is the calendar-date string the gate compares against. It is
// computed in the server's local zone on purpose; "once per day" follows
// whatever day the household clock says.
func localDay(t time.Time) string {
	return t.Format("2006-01-02")
}

func (s *recipeService) canRefreshFree(ctx context.Context) (bool, error) {
	lastRefresh, err := s.recipeRepository.LastRefreshDate(ctx)
	if err != nil {
		return false, err
	}
	return lastRefresh != localDay(s.now()), nil
}

func (s *recipeService) Cached(ctx context.Context) (domain.RecipeListResponse, error) {
	return s.Refresh(ctx, false)
}

func (s *recipeService) Refresh(ctx context.Context, force bool) (domain.RecipeListResponse, error) {
	lang, err := s.settingsRepository.Language(ctx)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	if !force {
		cached, err := s.recipeRepository.LoadCache(ctx, lang)
		if err != nil {
			return domain.RecipeListResponse{}, err
		}
		free, err := s.canRefreshFree(ctx)
		if err != nil {
			return domain.RecipeListResponse{}, err
		}
		return domain.RecipeListResponse{Recipes: cached, CanRefreshFree: free}, nil
	}

	items, err := s.inventoryRepository.Load(ctx)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}
	if len(items) == 0 {
		return domain.RecipeListResponse{}, domain.ErrNoIngredients
	}

	priority, supporting := splitByExpiry(items, s.now())

	recipes, err := s.generator.Generate(ctx, priority, supporting, lang)
	if err != nil {
		// cache and gate stay untouched on failure
		return domain.RecipeListResponse{}, err
	}

	if err := s.recipeRepository.SaveCache(ctx, lang, recipes); err != nil {
		return domain.RecipeListResponse{}, err
	}
	if err := s.recipeRepository.SetLastRefreshDate(ctx, localDay(s.now())); err != nil {
		return domain.RecipeListResponse{}, err
	}

	return domain.RecipeListResponse{Recipes: recipes, CanRefreshFree: false}, nil
}

// splitByExpiry separates item names into the priority list (expiring
// within the window, expired included) and up to ten supporting names.
func splitByExpiry(items []entities.FoodItem, now time.Time) (priority, supporting []string) {
	limit := now.AddDate(0, 0, priorityWindowDays)

	for _, item := range items {
		if !item.ExpiryDate.After(limit) {
			priority = append(priority, item.Name)
			continue
		}
		if len(supporting) < maxSupportingItems {
			supporting = append(supporting, item.Name)
		}
	}
	return priority, supporting
}

func (s *recipeService) StartAdSession(_ context.Context) domain.AdSessionResponse {
	return s.adSessions.Start()
}

// CompleteAdSession triggers exactly one forced refresh once the
// countdown has elapsed.
func (s *recipeService) CompleteAdSession(ctx context.Context, sessionID string) (domain.RecipeListResponse, error) {
	if err := s.adSessions.Complete(sessionID); err != nil {
		return domain.RecipeListResponse{}, err
	}
	return s.Refresh(ctx, true)
}
