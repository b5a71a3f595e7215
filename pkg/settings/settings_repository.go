package settings

import (
	"context"
	"errors"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/entities"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/kvstore"
)

type (
	SettingsRepository interface {
		Language(ctx context.Context) (entities.Language, error)
		SetLanguage(ctx context.Context, lang entities.Language) error
		OnboardingCompleted(ctx context.Context) (bool, error)
		SetOnboardingCompleted(ctx context.Context) error
	}

	settingsRepository struct {
		store kvstore.Store
	}
)

func NewSettingsRepository(store kvstore.Store) SettingsRepository {
	return &settingsRepository{store: store}
}

// Language returns the stored preference, defaulting to English.
func (r *settingsRepository) Language(ctx context.Context) (entities.Language, error) {
	raw, err := r.store.Get(ctx, kvstore.KeyLanguage)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return entities.LanguageEnglish, nil
	}
	if err != nil {
		return "", err
	}

	lang := entities.Language(raw)
	if !lang.Valid() {
		return entities.LanguageEnglish, nil
	}
	return lang, nil
}

func (r *settingsRepository) SetLanguage(ctx context.Context, lang entities.Language) error {
	return r.store.Set(ctx, kvstore.KeyLanguage, []byte(lang))
}

// OnboardingCompleted reports whether the onboarding flag was ever set;
// presence of the key is what matters, not its value.
func (r *settingsRepository) OnboardingCompleted(ctx context.Context) (bool, error) {
	_, err := r.store.Get(ctx, kvstore.KeyOnboarding)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *settingsRepository) SetOnboardingCompleted(ctx context.Context) error {
	return r.store.Set(ctx, kvstore.KeyOnboarding, []byte("true"))
}
