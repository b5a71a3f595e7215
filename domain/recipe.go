package domain

import (
	"errors"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/entities"
)

var (
	MessageSuccessGetRecipes     = "recipes retrieved successfully"
	MessageSuccessRefreshRecipes = "recipes refreshed successfully"
	MessageSuccessToggleFavorite = "favorite toggled successfully"
	MessageSuccessGetFavorites   = "favorites retrieved successfully"
	MessageSuccessStartAd        = "ad session started"
	MessageSuccessCompleteAd     = "ad session completed"

	MessageFailedGetRecipes     = "failed to retrieve recipes"
	MessageFailedRefreshRecipes = "failed to refresh recipes"
	MessageFailedToggleFavorite = "failed to toggle favorite"
	MessageFailedGetFavorites   = "failed to retrieve favorites"
	MessageFailedStartAd        = "failed to start ad session"
	MessageFailedCompleteAd     = "failed to complete ad session"

	ErrNoIngredients         = errors.New("no ingredients available for recipe generation")
	ErrGenerationFailed      = errors.New("recipe generation failed")
	ErrMalformedRecipes      = errors.New("recipe generator returned a malformed response")
	ErrAdSessionNotFound     = errors.New("ad session not found")
	ErrAdSessionStillRunning = errors.New("ad session countdown has not finished")
)

type (
	RecipeListResponse struct {
		Recipes        []entities.Recipe `json:"recipes"`
		CanRefreshFree bool              `json:"can_refresh_free"`
	}

	ToggleFavoriteRequest struct {
		Recipe entities.Recipe `json:"recipe" validate:"required"`
	}

	FavoritesResponse struct {
		Favorites []entities.Recipe `json:"favorites"`
	}

	AdSessionResponse struct {
		SessionID       string `json:"session_id"`
		DurationSeconds int    `json:"duration_seconds"`
	}
)
