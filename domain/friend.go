package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateInvitation = "friend invitation sent"
	MessageSuccessGetInvitations   = "friend invitations retrieved successfully"
	MessageSuccessAcceptInvitation = "friend invitation accepted"
	MessageSuccessGetFriends       = "friends retrieved successfully"

	MessageFailedCreateInvitation = "failed to create friend invitation"
	MessageFailedGetInvitations   = "failed to retrieve friend invitations"
	MessageFailedAcceptInvitation = "failed to accept friend invitation"
	MessageFailedGetFriends       = "failed to retrieve friends"

	ErrInvalidRecipientEmail = errors.New("valid email address required")
	ErrSelfInvitation        = errors.New("you cannot invite yourself")
	ErrDuplicateInvitation   = errors.New("you already have a pending invitation to this email")
	ErrInvitationNotFound    = errors.New("invitation not found or already used")
	ErrInvitationExpired     = errors.New("invitation has expired")
	ErrAcceptOwnInvitation   = errors.New("you cannot accept your own invitation")
)

type (
	CreateFriendInvitationRequest struct {
		RecipientEmail string `json:"recipient_email" validate:"required,email"`
	}

	CreateFriendInvitationResponse struct {
		Success   bool `json:"success"`
		EmailSent bool `json:"email_sent"`
	}

	AcceptFriendInvitationResponse struct {
		Success     bool   `json:"success"`
		SenderEmail string `json:"sender_email"`
	}

	FriendResponse struct {
		ID           string    `json:"id"`
		FriendUserID string    `json:"friend_user_id"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
