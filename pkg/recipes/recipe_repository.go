package recipes

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/entities"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/kvstore"
)

type (
	RecipeRepository interface {
		LoadCache(ctx context.Context, lang entities.Language) ([]entities.Recipe, error)
		SaveCache(ctx context.Context, lang entities.Language, recipes []entities.Recipe) error
		LastRefreshDate(ctx context.Context) (string, error)
		SetLastRefreshDate(ctx context.Context, date string) error
	}

	recipeRepository struct {
		store kvstore.Store
	}
)

func NewRecipeRepository(store kvstore.Store) RecipeRepository {
	return &recipeRepository{store: store}
}

func cacheKey(lang entities.Language) string {
	return kvstore.RecipeCacheKeyPrefix + string(lang)
}

// LoadCache returns the cached suggestions for one language. A missing
// or corrupted cache entry yields an empty list.
func (r *recipeRepository) LoadCache(ctx context.Context, lang entities.Language) ([]entities.Recipe, error) {
	raw, err := r.store.Get(ctx, cacheKey(lang))
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return []entities.Recipe{}, nil
	}
	if err != nil {
		return nil, err
	}

	var recipes []entities.Recipe
	if err := json.Unmarshal(raw, &recipes); err != nil {
		_ = r.store.Delete(ctx, cacheKey(lang))
		return []entities.Recipe{}, nil
	}
	return recipes, nil
}

func (r *recipeRepository) SaveCache(ctx context.Context, lang entities.Language, recipes []entities.Recipe) error {
	raw, err := json.Marshal(recipes)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, cacheKey(lang), raw)
}

func (r *recipeRepository) LastRefreshDate(ctx context.Context) (string, error) {
	raw, err := r.store.Get(ctx, kvstore.KeyLastRefreshDate)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (r *recipeRepository) SetLastRefreshDate(ctx context.Context, date string) error {
	return r.store.Set(ctx, kvstore.KeyLastRefreshDate, []byte(date))
}
