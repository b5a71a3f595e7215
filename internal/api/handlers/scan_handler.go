package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/domain"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/internal/api/presenters"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/scan"
)

type (
	ScanHandler interface {
		GetCapability(c *fiber.Ctx) error
		LookupBarcode(c *fiber.Ctx) error
		ConfirmScan(c *fiber.Ctx) error
	}

	scanHandler struct {
		scanService scan.ScanService
		validator   *validator.Validate
	}
)

func NewScanHandler(scanService scan.ScanService, validator *validator.Validate) ScanHandler {
	return &scanHandler{
		scanService: scanService,
		validator:   validator,
	}
}

func (h *scanHandler) GetCapability(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.scanService.Capability(c.Context()), fiber.StatusOK, domain.MessageSuccessGetCapability)
}

func (h *scanHandler) LookupBarcode(c *fiber.Ctx) error {
	req := new(domain.LookupBarcodeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLookupBarcode, err)
	}

	res, err := h.scanService.Lookup(c.Context(), *req)
	if err != nil {
		// an unknown barcode is recoverable: the client keeps scanning
		if errors.Is(err, domain.ErrProductNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageProductNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedLookupBarcode, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLookupBarcode)
}

func (h *scanHandler) ConfirmScan(c *fiber.Ctx) error {
	req := new(domain.ConfirmScanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConfirmScan, err)
	}

	res, err := h.scanService.Confirm(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConfirmScan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessConfirmScan)
}
