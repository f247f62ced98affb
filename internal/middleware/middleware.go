package middleware

import (
	"leftknovers-backend/domain"
	"leftknovers-backend/internal/api/presenters"
	"leftknovers-backend/internal/utils"
	"leftknovers-backend/pkg/identity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(identityService identity.IdentityService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowCredentials: true,
		AllowOrigins:     utils.GetConfig("APP_URL"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	})
}

// AuthMiddleware resolves the session cookie to a principal via the external
// identity service and stores it in request locals.
func (m *middleware) AuthMiddleware(identityService identity.IdentityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionToken := c.Cookies(identity.SessionCookieName)
		if sessionToken == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedUnauthorized, domain.ErrUnauthorized)
		}

		user, err := identityService.GetUserBySession(c.Context(), sessionToken)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedUnauthorized, domain.ErrSessionInvalid)
		}

		c.Locals("user_id", user.ID)
		c.Locals("user_email", user.Email)
		c.Locals("user", user)

		return c.Next()
	}
}
