package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/domain"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/internal/api/presenters"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/settings"
)

type (
	SettingsHandler interface {
		GetLanguage(c *fiber.Ctx) error
		SetLanguage(c *fiber.Ctx) error
		GetOnboarding(c *fiber.Ctx) error
		CompleteOnboarding(c *fiber.Ctx) error
	}

	settingsHandler struct {
		settingsService settings.SettingsService
		validator       *validator.Validate
	}
)

func NewSettingsHandler(settingsService settings.SettingsService, validator *validator.Validate) SettingsHandler {
	return &settingsHandler{
		settingsService: settingsService,
		validator:       validator,
	}
}

func (h *settingsHandler) GetLanguage(c *fiber.Ctx) error {
	res, err := h.settingsService.Language(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetLanguage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLanguage)
}

func (h *settingsHandler) SetLanguage(c *fiber.Ctx) error {
	req := new(domain.SetLanguageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetLanguage, err)
	}

	if err := h.settingsService.SetLanguage(c.Context(), *req); err != nil {
		if errors.Is(err, domain.ErrUnsupportedLanguage) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetLanguage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSetLanguage, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetLanguage)
}

func (h *settingsHandler) GetOnboarding(c *fiber.Ctx) error {
	res, err := h.settingsService.Onboarding(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetOnboarding, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOnboarding)
}

func (h *settingsHandler) CompleteOnboarding(c *fiber.Ctx) error {
	if err := h.settingsService.CompleteOnboarding(c.Context()); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSetOnboarding, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetOnboarding)
}
