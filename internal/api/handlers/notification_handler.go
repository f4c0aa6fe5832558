package handlers

import (
	"errors"
	"strconv"

	"food-expiry-tracker/domain"
	"food-expiry-tracker/internal/api/presenters"
	"food-expiry-tracker/pkg/notification"

	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		NotifyUser(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
	}
)

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandler{notificationService: notificationService}
}

// NotifyUser triggers the soon-window alert pipeline for a single user.
func (h *notificationHandler) NotifyUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("user_id"))
	if err != nil || userID <= 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedNotifyRequest, domain.ErrInvalidUserID)
	}

	res, err := h.notificationService.NotifyUser(c.Context(), uint(userID))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedNotifyRequest, err)
		case errors.Is(err, domain.ErrInvalidUserID), errors.Is(err, domain.ErrInvalidPhone):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedNotifyRequest, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSendAlert, err)
		}
	}

	switch res.Status {
	case domain.NotifyStatusNoItems:
		return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageNoExpiringItems)
	case domain.NotifyStatusSkipped:
		return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageAlertSkipped)
	default:
		return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSendAlert)
	}
}
