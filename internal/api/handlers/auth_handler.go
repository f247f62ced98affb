package handlers

import (
	"time"

	"leftknovers-backend/domain"
	"leftknovers-backend/internal/api/presenters"
	"leftknovers-backend/pkg/identity"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const sessionMaxAge = 60 * 24 * time.Hour

type (
	AuthHandler interface {
		GetOAuthRedirectURL(c *fiber.Ctx) error
		CreateSession(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
	}

	authHandler struct {
		identityService identity.IdentityService
		validator       *validator.Validate
	}
)

func NewAuthHandler(identityService identity.IdentityService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		identityService: identityService,
		validator:       validator,
	}
}

func (h *authHandler) GetOAuthRedirectURL(c *fiber.Ctx) error {
	redirectURL, err := h.identityService.GetOAuthRedirectURL(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRedirectURL, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"redirect_url": redirectURL}, fiber.StatusOK, domain.MessageSuccessRedirectURL)
}

func (h *authHandler) CreateSession(c *fiber.Ctx) error {
	req := new(domain.CreateSessionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, domain.ErrNoAuthorizationCode)
	}

	sessionToken, err := h.identityService.ExchangeCodeForSession(c.Context(), req.Code)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     identity.SessionCookieName,
		Value:    sessionToken,
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *authHandler) Logout(c *fiber.Ctx) error {
	sessionToken := c.Cookies(identity.SessionCookieName)
	if sessionToken != "" {
		if err := h.identityService.DeleteSession(c.Context(), sessionToken); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogout, err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     identity.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogout)
}

func (h *authHandler) Me(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(authUser(c))
}
