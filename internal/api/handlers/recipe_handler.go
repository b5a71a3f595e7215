package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/domain"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/internal/api/presenters"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/favorites"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/recipes"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		RefreshRecipes(c *fiber.Ctx) error
		StartAdSession(c *fiber.Ctx) error
		CompleteAdSession(c *fiber.Ctx) error
		GetFavorites(c *fiber.Ctx) error
		ToggleFavorite(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService    recipes.RecipeService
		favoritesService favorites.FavoritesService
		validator        *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipes.RecipeService, favoritesService favorites.FavoritesService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService:    recipeService,
		favoritesService: favoritesService,
		validator:        validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.Cached(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

// RefreshRecipes always forces a generation. The free/paid decision is
// the client's: it calls this directly when the gate is open, or routes
// through the ad session endpoints when it is not.
func (h *recipeHandler) RefreshRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.Refresh(c.Context(), true)
	if err != nil {
		if errors.Is(err, domain.ErrNoIngredients) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRefreshRecipes, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedRefreshRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRefreshRecipes)
}

func (h *recipeHandler) StartAdSession(c *fiber.Ctx) error {
	res := h.recipeService.StartAdSession(c.Context())
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessStartAd)
}

func (h *recipeHandler) CompleteAdSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")

	res, err := h.recipeService.CompleteAdSession(c.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAdSessionNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCompleteAd, err)
		case errors.Is(err, domain.ErrAdSessionStillRunning):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCompleteAd, err)
		case errors.Is(err, domain.ErrNoIngredients):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteAd, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedCompleteAd, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCompleteAd)
}

func (h *recipeHandler) GetFavorites(c *fiber.Ctx) error {
	list, err := h.favoritesService.List(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFavorites, err)
	}

	return presenters.SuccessResponse(c, domain.FavoritesResponse{Favorites: list}, fiber.StatusOK, domain.MessageSuccessGetFavorites)
}

func (h *recipeHandler) ToggleFavorite(c *fiber.Ctx) error {
	req := new(domain.ToggleFavoriteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if req.Recipe.ID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleFavorite, errors.New("recipe id is required"))
	}

	updated, err := h.favoritesService.Toggle(c.Context(), req.Recipe)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedToggleFavorite, err)
	}

	return presenters.SuccessResponse(c, domain.FavoritesResponse{Favorites: updated}, fiber.StatusOK, domain.MessageSuccessToggleFavorite)
}
