package friend

import (
	"context"

	"leftknovers-backend/entities"

	"gorm.io/gorm"
)

type (
	FriendRepository interface {
		CreateInvitation(ctx context.Context, invitation *entities.FriendInvitation) error
		GetPendingInvitationByEmail(ctx context.Context, senderUserID string, recipientEmail string) (*entities.FriendInvitation, error)
		GetPendingInvitationByToken(ctx context.Context, token string) (*entities.FriendInvitation, error)
		GetInvitationsBySender(ctx context.Context, senderUserID string) ([]*entities.FriendInvitation, error)
		MarkInvitationExpired(ctx context.Context, invitation *entities.FriendInvitation) error
		AcceptInvitation(ctx context.Context, invitation *entities.FriendInvitation, friendship *entities.Friendship) error
		GetFriendship(ctx context.Context, userID1 string, userID2 string) (*entities.Friendship, error)
		GetFriendshipsByUser(ctx context.Context, userID string) ([]*entities.Friendship, error)
	}

	friendRepository struct {
		db *gorm.DB
	}
)

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) CreateInvitation(ctx context.Context, invitation *entities.FriendInvitation) error {
	return r.db.WithContext(ctx).Create(invitation).Error
}

func (r *friendRepository) GetPendingInvitationByEmail(ctx context.Context, senderUserID string, recipientEmail string) (*entities.FriendInvitation, error) {
	var invitation entities.FriendInvitation
	if err := r.db.WithContext(ctx).
		Where("sender_user_id = ? AND recipient_email = ? AND is_accepted = ? AND is_expired = ?",
			senderUserID, recipientEmail, false, false).
		First(&invitation).Error; err != nil {
		return nil, err
	}
	return &invitation, nil
}

func (r *friendRepository) GetPendingInvitationByToken(ctx context.Context, token string) (*entities.FriendInvitation, error) {
	var invitation entities.FriendInvitation
	if err := r.db.WithContext(ctx).
		Where("invitation_token = ? AND is_accepted = ? AND is_expired = ?", token, false, false).
		First(&invitation).Error; err != nil {
		return nil, err
	}
	return &invitation, nil
}

func (r *friendRepository) GetInvitationsBySender(ctx context.Context, senderUserID string) ([]*entities.FriendInvitation, error) {
	var invitations []*entities.FriendInvitation

	if err := r.db.WithContext(ctx).
		Where("sender_user_id = ?", senderUserID).
		Order("created_at desc").
		Find(&invitations).Error; err != nil {
		return nil, err
	}

	return invitations, nil
}

func (r *friendRepository) MarkInvitationExpired(ctx context.Context, invitation *entities.FriendInvitation) error {
	invitation.IsExpired = true
	return r.db.WithContext(ctx).Save(invitation).Error
}

// AcceptInvitation flips the accepted flag and, when a friendship row is
// supplied, creates it in the same transaction so acceptance is all-or-nothing.
func (r *friendRepository) AcceptInvitation(ctx context.Context, invitation *entities.FriendInvitation, friendship *entities.Friendship) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if friendship != nil {
			if err := tx.Create(friendship).Error; err != nil {
				return err
			}
		}
		invitation.IsAccepted = true
		return tx.Save(invitation).Error
	})
}

func (r *friendRepository) GetFriendship(ctx context.Context, userID1 string, userID2 string) (*entities.Friendship, error) {
	var friendship entities.Friendship
	if err := r.db.WithContext(ctx).
		Where("user_id_1 = ? AND user_id_2 = ?", userID1, userID2).
		First(&friendship).Error; err != nil {
		return nil, err
	}
	return &friendship, nil
}

func (r *friendRepository) GetFriendshipsByUser(ctx context.Context, userID string) ([]*entities.Friendship, error) {
	var friendships []*entities.Friendship

	if err := r.db.WithContext(ctx).
		Where("user_id_1 = ? OR user_id_2 = ?", userID, userID).
		Order("created_at desc").
		Find(&friendships).Error; err != nil {
		return nil, err
	}

	return friendships, nil
}
