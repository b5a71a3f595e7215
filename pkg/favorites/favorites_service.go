package favorites

import (
	"context"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/entities"
)

type (
	FavoritesService interface {
		// Toggle removes the recipe when one with the same ID is
		// already a favorite, otherwise appends it. Toggling twice
		// restores the original set.
		Toggle(ctx context.Context, recipe entities.Recipe) ([]entities.Recipe, error)
		IsFavorite(ctx context.Context, id string) (bool, error)
		List(ctx context.Context) ([]entities.Recipe, error)
	}

	favoritesService struct {
		favoritesRepository FavoritesRepository
	}
)

func NewFavoritesService(favoritesRepository FavoritesRepository) FavoritesService {
	return &favoritesService{favoritesRepository: favoritesRepository}
}

func (s *favoritesService) Toggle(ctx context.Context, recipe entities.Recipe) ([]entities.Recipe, error) {
	recipes, err := s.favoritesRepository.Load(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]entities.Recipe, 0, len(recipes)+1)
	removed := false
	for _, existing := range recipes {
		if existing.ID == recipe.ID {
			removed = true
			continue
		}
		updated = append(updated, existing)
	}
	if !removed {
		updated = append(updated, recipe)
	}

	if err := s.favoritesRepository.SaveAll(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *favoritesService) IsFavorite(ctx context.Context, id string) (bool, error) {
	recipes, err := s.favoritesRepository.Load(ctx)
	if err != nil {
		return false, err
	}
	for _, recipe := range recipes {
		if recipe.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *favoritesService) List(ctx context.Context) ([]entities.Recipe, error) {
	return s.favoritesRepository.Load(ctx)
}
