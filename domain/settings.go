package domain

import (
	"errors"
)

var (
	MessageSuccessGetLanguage   = "language retrieved successfully"
	MessageSuccessSetLanguage   = "language updated successfully"
	MessageSuccessGetOnboarding = "onboarding state retrieved successfully"
	MessageSuccessSetOnboarding = "onboarding completed"

	MessageFailedGetLanguage   = "failed to retrieve language"
	MessageFailedSetLanguage   = "failed to update language"
	MessageFailedGetOnboarding = "failed to retrieve onboarding state"
	MessageFailedSetOnboarding = "failed to complete onboarding"

	ErrUnsupportedLanguage = errors.New("unsupported language code")
)

type (
	SetLanguageRequest struct {
		Language string `json:"language" validate:"required"`
	}

	LanguageResponse struct {
		Language string `json:"language"`
	}

	OnboardingResponse struct {
		Completed bool `json:"completed"`
	}
)
