package handlers

import (
	"errors"
	"strconv"

	"food-expiry-tracker/domain"
	"food-expiry-tracker/internal/api/presenters"
	"food-expiry-tracker/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		AddFoodItem(c *fiber.Ctx) error
		GetFoodItems(c *fiber.Ctx) error
		DeleteFoodItem(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

// authenticatedUserID reads the user id the auth middleware stored in locals.
func authenticatedUserID(c *fiber.Ctx) (uint, error) {
	raw, _ := c.Locals("user_id").(string)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidUserID
	}
	return uint(id), nil
}

func (h *foodHandler) AddFoodItem(c *fiber.Ctx) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedProcessRequest, err)
	}

	req := new(domain.AddFoodItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	res, err := h.foodService.AddFoodItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodItem)
}

func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedProcessRequest, err)
	}

	items, err := h.foodService.GetFoodItems(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"items": items}, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) DeleteFoodItem(c *fiber.Ctx) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedProcessRequest, err)
	}

	itemID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFoodItem, domain.ErrFoodItemNotFound)
	}

	if err := h.foodService.DeleteFoodItem(c.Context(), uint(itemID), userID); err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedDeleteFoodItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodItem)
}
