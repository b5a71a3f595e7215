package kvstore

import (
	"context"
	"errors"
)

// Keys owned by the application. Each logical collection is read and
// written as a whole JSON value under its own key.
const (
	KeyItems           = "smart_fridge_items"
	KeyFavorites       = "smart_fridge_favs"
	KeyLanguage        = "lang"
	KeyOnboarding      = "onboarding_completed"
	KeyLastRefreshDate = "smart_fridge_last_refresh_date"

	// RecipeCacheKeyPrefix is suffixed with the language code.
	RecipeCacheKeyPrefix = "smart_fridge_ai_recipes_v2_"
)

var ErrKeyNotFound = errors.New("key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
