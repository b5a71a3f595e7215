package favorites

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/entities"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/kvstore"
)

func testRecipe(id, name string) entities.Recipe {
	return entities.Recipe{
		ID:           id,
		Name:         name,
		Ingredients:  []string{"egg", "rice"},
		Instructions: []string{"cook the rice", "fry the egg"},
		Reason:       "uses what is about to expire",
		Calories:     420,
	}
}

func TestToggleAddsThenRemoves(t *testing.T) {
	t.Parallel()

	service := NewFavoritesService(NewFavoritesRepository(kvstore.NewMemoryStore()))
	ctx := context.Background()

	recipe := testRecipe("recipe1", "Fried Rice")

	updated, err := service.Toggle(ctx, recipe)
	require.NoError(t, err)
	require.Len(t, updated, 1)

	fav, err := service.IsFavorite(ctx, "recipe1")
	require.NoError(t, err)
	assert.True(t, fav)

	updated, err = service.Toggle(ctx, recipe)
	require.NoError(t, err)
	assert.Empty(t, updated)

	fav, err = service.IsFavorite(ctx, "recipe1")
	require.NoError(t, err)
	assert.False(t, fav)
}

func TestToggleMatchesByIDOnly(t *testing.T) {
	t.Parallel()

	service := NewFavoritesService(NewFavoritesRepository(kvstore.NewMemoryStore()))
	ctx := context.Background()

	_, err := service.Toggle(ctx, testRecipe("recipe1", "Fried Rice"))
	require.NoError(t, err)

	// same id, regenerated content: still a removal
	updated, err := service.Toggle(ctx, testRecipe("recipe1", "Egg Fried Rice"))
	require.NoError(t, err)
	assert.Empty(t, updated)
}

func TestToggleKeepsOtherFavorites(t *testing.T) {
	t.Parallel()

	service := NewFavoritesService(NewFavoritesRepository(kvstore.NewMemoryStore()))
	ctx := context.Background()

	_, err := service.Toggle(ctx, testRecipe("recipe1", "Fried Rice"))
	require.NoError(t, err)
	_, err = service.Toggle(ctx, testRecipe("recipe2", "Veggie Soup"))
	require.NoError(t, err)

	updated, err := service.Toggle(ctx, testRecipe("recipe1", "Fried Rice"))
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, "recipe2", updated[0].ID)
}

func TestListSurvivesRestart(t *testing.T) {
	t.Parallel()

	store := kvstore.NewMemoryStore()
	ctx := context.Background()

	service := NewFavoritesService(NewFavoritesRepository(store))
	_, err := service.Toggle(ctx, testRecipe("recipe1", "Fried Rice"))
	require.NoError(t, err)

	// a fresh service over the same store sees the persisted set
	reopened := NewFavoritesService(NewFavoritesRepository(store))
	recipes, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Fried Rice", recipes[0].Name)
}
