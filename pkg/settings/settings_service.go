package settings

import (
	"context"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/domain"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/entities"
)

type (
	SettingsService interface {
		Language(ctx context.Context) (domain.LanguageResponse, error)
		SetLanguage(ctx context.Context, req domain.SetLanguageRequest) error
		Onboarding(ctx context.Context) (domain.OnboardingResponse, error)
		CompleteOnboarding(ctx context.Context) error
	}

	settingsService struct {
		settingsRepository SettingsRepository
	}
)

func NewSettingsService(settingsRepository SettingsRepository) SettingsService {
	return &settingsService{settingsRepository: settingsRepository}
}

func (s *settingsService) Language(ctx context.Context) (domain.LanguageResponse, error) {
	lang, err := s.settingsRepository.Language(ctx)
	if err != nil {
		return domain.LanguageResponse{}, err
	}
	return domain.LanguageResponse{Language: string(lang)}, nil
}

func (s *settingsService) SetLanguage(ctx context.Context, req domain.SetLanguageRequest) error {
	lang := entities.Language(req.Language)
	if !lang.Valid() {
		return domain.ErrUnsupportedLanguage
	}
	return s.settingsRepository.SetLanguage(ctx, lang)
}

func (s *settingsService) Onboarding(ctx context.Context) (domain.OnboardingResponse, error) {
	completed, err := s.settingsRepository.OnboardingCompleted(ctx)
	if err != nil {
		return domain.OnboardingResponse{}, err
	}
	return domain.OnboardingResponse{Completed: completed}, nil
}

func (s *settingsService) CompleteOnboarding(ctx context.Context) error {
	return s.settingsRepository.SetOnboardingCompleted(ctx)
}
