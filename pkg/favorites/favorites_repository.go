package favorites

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/entities"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/kvstore"
)

type (
	FavoritesRepository interface {
		Load(ctx context.Context) ([]entities.Recipe, error)
		SaveAll(ctx context.Context, recipes []entities.Recipe) error
	}

	favoritesRepository struct {
		store kvstore.Store
	}
)

func NewFavoritesRepository(store kvstore.Store) FavoritesRepository {
	return &favoritesRepository{store: store}
}

func (r *favoritesRepository) Load(ctx context.Context) ([]entities.Recipe, error) {
	raw, err := r.store.Get(ctx, kvstore.KeyFavorites)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return []entities.Recipe{}, nil
	}
	if err != nil {
		return nil, err
	}

	var recipes []entities.Recipe
	if err := json.Unmarshal(raw, &recipes); err != nil {
		_ = r.store.Delete(ctx, kvstore.KeyFavorites)
		return []entities.Recipe{}, nil
	}
	return recipes, nil
}

func (r *favoritesRepository) SaveAll(ctx context.Context, recipes []entities.Recipe) error {
	raw, err := json.Marshal(recipes)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, kvstore.KeyFavorites, raw)
}
