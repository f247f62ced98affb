package friend

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strings"
	"time"

	"leftknovers-backend/domain"
	"leftknovers-backend/entities"
	"leftknovers-backend/internal/utils/mailing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	invitationTokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	invitationTokenLength   = 32
	invitationTTLDays       = 7
)

type (
	Mailer interface {
		SendFriendInvitation(toEmail string, senderName string, senderEmail string, invitationToken string) error
	}

	FriendService interface {
		CreateInvitation(ctx context.Context, req domain.CreateFriendInvitationRequest, user *domain.AuthUser) (domain.CreateFriendInvitationResponse, error)
		GetInvitations(ctx context.Context, userID string) ([]*entities.FriendInvitation, error)
		AcceptInvitation(ctx context.Context, token string, user *domain.AuthUser) (domain.AcceptFriendInvitationResponse, error)
		GetFriends(ctx context.Context, userID string) ([]domain.FriendResponse, error)
	}

	friendService struct {
		friendRepository FriendRepository
		mailer           Mailer
	}

	smtpMailer struct{}
)

func NewSMTPMailer() Mailer {
	return smtpMailer{}
}

func (smtpMailer) SendFriendInvitation(toEmail string, senderName string, senderEmail string, invitationToken string) error {
	return mailing.SendFriendInvitation(toEmail, senderName, senderEmail, invitationToken)
}

func NewFriendService(friendRepository FriendRepository, mailer Mailer) FriendService {
	return &friendService{
		friendRepository: friendRepository,
		mailer:           mailer,
	}
}

func (s *friendService) CreateInvitation(ctx context.Context, req domain.CreateFriendInvitationRequest, user *domain.AuthUser) (domain.CreateFriendInvitationResponse, error) {
	recipientEmail := strings.ToLower(strings.TrimSpace(req.RecipientEmail))
	if !strings.Contains(recipientEmail, "@") {
		return domain.CreateFriendInvitationResponse{}, domain.ErrInvalidRecipientEmail
	}

	if recipientEmail == strings.ToLower(user.Email) {
		return domain.CreateFriendInvitationResponse{}, domain.ErrSelfInvitation
	}

	_, err := s.friendRepository.GetPendingInvitationByEmail(ctx, user.ID, recipientEmail)
	if err == nil {
		return domain.CreateFriendInvitationResponse{}, domain.ErrDuplicateInvitation
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CreateFriendInvitationResponse{}, err
	}

	invitation := &entities.FriendInvitation{
		ID:              uuid.New(),
		SenderUserID:    user.ID,
		RecipientEmail:  recipientEmail,
		InvitationToken: generateInvitationToken(),
		ExpiresAt:       time.Now().AddDate(0, 0, invitationTTLDays),
	}

	if err := s.friendRepository.CreateInvitation(ctx, invitation); err != nil {
		return domain.CreateFriendInvitationResponse{}, err
	}

	// The invitation stands even if the email fails to go out; the caller is
	// told so it can surface a resend option.
	emailSent := true
	if err := s.mailer.SendFriendInvitation(recipientEmail, user.DisplayName(), user.Email, invitation.InvitationToken); err != nil {
		log.Printf("Failed to send invitation email to %s: %v", recipientEmail, err)
		emailSent = false
	}

	return domain.CreateFriendInvitationResponse{
		Success:   true,
		EmailSent: emailSent,
	}, nil
}

func (s *friendService) GetInvitations(ctx context.Context, userID string) ([]*entities.FriendInvitation, error) {
	return s.friendRepository.GetInvitationsBySender(ctx, userID)
}

func (s *friendService) AcceptInvitation(ctx context.Context, token string, user *domain.AuthUser) (domain.AcceptFriendInvitationResponse, error) {
	invitation, err := s.friendRepository.GetPendingInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AcceptFriendInvitationResponse{}, domain.ErrInvitationNotFound
		}
		return domain.AcceptFriendInvitationResponse{}, err
	}

	if time.Now().After(invitation.ExpiresAt) {
		if err := s.friendRepository.MarkInvitationExpired(ctx, invitation); err != nil {
			return domain.AcceptFriendInvitationResponse{}, err
		}
		return domain.AcceptFriendInvitationResponse{}, domain.ErrInvitationExpired
	}

	if invitation.SenderUserID == user.ID {
		return domain.AcceptFriendInvitationResponse{}, domain.ErrAcceptOwnInvitation
	}

	userID1, userID2 := canonicalPair(user.ID, invitation.SenderUserID)

	_, err = s.friendRepository.GetFriendship(ctx, userID1, userID2)
	if err == nil {
		// Already friends: just retire the invitation.
		if err := s.friendRepository.AcceptInvitation(ctx, invitation, nil); err != nil {
			return domain.AcceptFriendInvitationResponse{}, err
		}
		return domain.AcceptFriendInvitationResponse{Success: true, SenderEmail: invitation.RecipientEmail}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AcceptFriendInvitationResponse{}, err
	}

	friendship := &entities.Friendship{
		ID:      uuid.New(),
		UserID1: userID1,
		UserID2: userID2,
	}

	if err := s.friendRepository.AcceptInvitation(ctx, invitation, friendship); err != nil {
		return domain.AcceptFriendInvitationResponse{}, err
	}

	return domain.AcceptFriendInvitationResponse{Success: true, SenderEmail: invitation.RecipientEmail}, nil
}

func (s *friendService) GetFriends(ctx context.Context, userID string) ([]domain.FriendResponse, error) {
	friendships, err := s.friendRepository.GetFriendshipsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	friends := make([]domain.FriendResponse, 0, len(friendships))
	for _, friendship := range friendships {
		friendUserID := friendship.UserID1
		if friendUserID == userID {
			friendUserID = friendship.UserID2
		}
		friends = append(friends, domain.FriendResponse{
			ID:           friendship.ID.String(),
			FriendUserID: friendUserID,
			CreatedAt:    friendship.CreatedAt,
		})
	}

	return friends, nil
}

// canonicalPair orders the two ids so the undirected pair always stores the
// smaller id first.
func canonicalPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

func generateInvitationToken() string {
	token := make([]byte, invitationTokenLength)
	for i := range token {
		token[i] = invitationTokenAlphabet[rand.Intn(len(invitationTokenAlphabet))]
	}
	return string(token)
}
