package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/domain"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/internal/api/presenters"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/notify"
)

type (
	NotifyHandler interface {
		SendDigest(c *fiber.Ctx) error
	}

	notifyHandler struct {
		notifyService notify.NotifyService
		validator     *validator.Validate
	}
)

func NewNotifyHandler(notifyService notify.NotifyService, validator *validator.Validate) NotifyHandler {
	return &notifyHandler{
		notifyService: notifyService,
		validator:     validator,
	}
}

func (h *notifyHandler) SendDigest(c *fiber.Ctx) error {
	req := new(domain.SendDigestRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendDigest, err)
	}

	if err := h.notifyService.SendExpiryDigest(c.Context(), *req); err != nil {
		switch {
		case errors.Is(err, domain.ErrNoDigestRecipient), errors.Is(err, domain.ErrNothingExpiring):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendDigest, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedSendDigest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSendDigest)
}
