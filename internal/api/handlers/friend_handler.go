package handlers

import (
	"leftknovers-backend/domain"
	"leftknovers-backend/internal/api/presenters"
	"leftknovers-backend/pkg/friend"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FriendHandler interface {
		CreateInvitation(c *fiber.Ctx) error
		GetInvitations(c *fiber.Ctx) error
		AcceptInvitation(c *fiber.Ctx) error
		GetFriends(c *fiber.Ctx) error
	}

	friendHandler struct {
		friendService friend.FriendService
		validator     *validator.Validate
	}
)

func NewFriendHandler(friendService friend.FriendService, validator *validator.Validate) FriendHandler {
	return &friendHandler{
		friendService: friendService,
		validator:     validator,
	}
}

func (h *friendHandler) CreateInvitation(c *fiber.Ctx) error {
	user := authUser(c)
	req := new(domain.CreateFriendInvitationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateInvitation, domain.ErrInvalidRecipientEmail)
	}

	res, err := h.friendService.CreateInvitation(c.Context(), *req, user)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateInvitation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateInvitation)
}

func (h *friendHandler) GetInvitations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	invitations, err := h.friendService.GetInvitations(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetInvitations, err)
	}

	return presenters.SuccessResponse(c, invitations, fiber.StatusOK, domain.MessageSuccessGetInvitations)
}

func (h *friendHandler) AcceptInvitation(c *fiber.Ctx) error {
	user := authUser(c)
	token := c.Params("token")

	res, err := h.friendService.AcceptInvitation(c.Context(), token, user)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAcceptInvitation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAcceptInvitation)
}

func (h *friendHandler) GetFriends(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	friends, err := h.friendService.GetFriends(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetFriends, err)
	}

	return presenters.SuccessResponse(c, friends, fiber.StatusOK, domain.MessageSuccessGetFriends)
}
