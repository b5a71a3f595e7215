package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/domain"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/entities"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/kvstore"
)

func TestLanguageDefaultsToEnglish(t *testing.T) {
	t.Parallel()

	service := NewSettingsService(NewSettingsRepository(kvstore.NewMemoryStore()))

	res, err := service.Language(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "en", res.Language)
}

func TestSetLanguageRoundTrip(t *testing.T) {
	t.Parallel()

	service := NewSettingsService(NewSettingsRepository(kvstore.NewMemoryStore()))
	ctx := context.Background()

	require.NoError(t, service.SetLanguage(ctx, domain.SetLanguageRequest{Language: "vi"}))

	res, err := service.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, "vi", res.Language)
}

func TestSetLanguageRejectsUnknown(t *testing.T) {
	t.Parallel()

	service := NewSettingsService(NewSettingsRepository(kvstore.NewMemoryStore()))

	err := service.SetLanguage(context.Background(), domain.SetLanguageRequest{Language: "fr"})
	assert.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
}

func TestCorruptedLanguageFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	store := kvstore.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, kvstore.KeyLanguage, []byte("klingon")))

	repo := NewSettingsRepository(store)
	lang, err := repo.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.LanguageEnglish, lang)
}

func TestOnboardingFlag(t *testing.T) {
	t.Parallel()

	service := NewSettingsService(NewSettingsRepository(kvstore.NewMemoryStore()))
	ctx := context.Background()

	res, err := service.Onboarding(ctx)
	require.NoError(t, err)
	assert.False(t, res.Completed)

	require.NoError(t, service.CompleteOnboarding(ctx))

	res, err = service.Onboarding(ctx)
	require.NoError(t, err)
	assert.True(t, res.Completed)

	// completing again stays completed
	require.NoError(t, service.CompleteOnboarding(ctx))
	res, err = service.Onboarding(ctx)
	require.NoError(t, err)
	assert.True(t, res.Completed)
}
