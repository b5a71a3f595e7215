package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/domain"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/internal/api/presenters"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/inventory"
)

type (
	FoodHandler interface {
		AddFoodItem(c *fiber.Ctx) error
		DeleteFoodItem(c *fiber.Ctx) error
		GetFoodItems(c *fiber.Ctx) error
		GetExpiringItems(c *fiber.Ctx) error
		GetDashboard(c *fiber.Ctx) error
	}

	foodHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewFoodHandler(inventoryService inventory.InventoryService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *foodHandler) AddFoodItem(c *fiber.Ctx) error {
	req := new(domain.AddFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	res, err := h.inventoryService.Add(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodItem)
}

func (h *foodHandler) DeleteFoodItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.inventoryService.Remove(c.Context(), itemID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteFoodItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodItem)
}

func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	term := c.Query("q")
	category := c.Query("category", inventory.CategoryAll)

	items, err := h.inventoryService.Search(c.Context(), term, category)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"items": items}, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetExpiringItems(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", "3"))
	if err != nil || days < 0 {
		days = 3
	}

	now := time.Now()
	items, err := h.inventoryService.ExpiringWithin(c.Context(), days, now)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoodItems, err)
	}

	responses := make([]domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, domain.NewFoodItemResponse(item, now))
	}

	return presenters.SuccessResponse(c, fiber.Map{"items": responses}, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetDashboard(c *fiber.Ctx) error {
	dashboard, err := h.inventoryService.Dashboard(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrStorageUnavailable) {
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedGetDashboard, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, dashboard, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}
