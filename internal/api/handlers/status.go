package handlers

import (
	"errors"

	"leftknovers-backend/domain"

	"github.com/gofiber/fiber/v2"
)

// errorStatus maps service errors onto the response taxonomy: not-found and
// gone get their own codes, everything else is a bad request.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrFoodItemNotFound),
		errors.Is(err, domain.ErrInvitationNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvitationExpired):
		return fiber.StatusGone
	default:
		return fiber.StatusBadRequest
	}
}

func authUser(c *fiber.Ctx) *domain.AuthUser {
	return c.Locals("user").(*domain.AuthUser)
}
