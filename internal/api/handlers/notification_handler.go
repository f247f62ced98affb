package handlers

import (
	"leftknovers-backend/domain"
	"leftknovers-backend/internal/api/presenters"
	"leftknovers-backend/pkg/notification"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		GetPreferences(c *fiber.Ctx) error
		UpdatePreference(c *fiber.Ctx) error
		SendNotifications(c *fiber.Ctx) error
		GetExpiringSummary(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
		validator           *validator.Validate
	}
)

func NewNotificationHandler(notificationService notification.NotificationService, validator *validator.Validate) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
		validator:           validator,
	}
}

func (h *notificationHandler) GetPreferences(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	preferences, err := h.notificationService.GetPreferences(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetPreferences, err)
	}

	return presenters.SuccessResponse(c, preferences, fiber.StatusOK, domain.MessageSuccessGetPreferences)
}

func (h *notificationHandler) UpdatePreference(c *fiber.Ctx) error {
	user := authUser(c)
	itemID := c.Params("itemId")
	req := new(domain.UpdateNotificationPreferenceRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePreference, err)
	}

	preference, err := h.notificationService.UpdatePreference(c.Context(), itemID, *req, user)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdatePreference, err)
	}

	return presenters.SuccessResponse(c, preference, fiber.StatusOK, domain.MessageSuccessUpdatePreference)
}

func (h *notificationHandler) SendNotifications(c *fiber.Ctx) error {
	user := authUser(c)

	res, err := h.notificationService.SendDueNotifications(c.Context(), user)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedSendNotification, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSendNotification)
}

func (h *notificationHandler) GetExpiringSummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.notificationService.GetExpiringSummary(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedSendNotification, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSendNotification)
}
