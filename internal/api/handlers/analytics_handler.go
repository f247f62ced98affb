package handlers

import (
	"leftknovers-backend/domain"
	"leftknovers-backend/internal/api/presenters"
	"leftknovers-backend/pkg/analytics"

	"github.com/gofiber/fiber/v2"
)

type (
	AnalyticsHandler interface {
		GetAnalytics(c *fiber.Ctx) error
	}

	analyticsHandler struct {
		analyticsService analytics.AnalyticsService
	}
)

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandler{
		analyticsService: analyticsService,
	}
}

func (h *analyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	month := c.Query("month")
	category := c.Query("category")

	res, err := h.analyticsService.GetAnalytics(c.Context(), userID, month, category)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetAnalytics, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAnalytics)
}
