package friend

import (
	"context"
	"strings"
	"testing"
	"time"

	"leftknovers-backend/domain"
	"leftknovers-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeFriendRepository struct {
	invitations []*entities.FriendInvitation
	friendships []*entities.Friendship
	expired     []*entities.FriendInvitation
}

func (f *fakeFriendRepository) CreateInvitation(ctx context.Context, invitation *entities.FriendInvitation) error {
	f.invitations = append(f.invitations, invitation)
	return nil
}

func (f *fakeFriendRepository) GetPendingInvitationByEmail(ctx context.Context, senderUserID string, recipientEmail string) (*entities.FriendInvitation, error) {
	for _, invitation := range f.invitations {
		if invitation.SenderUserID == senderUserID && invitation.RecipientEmail == recipientEmail &&
			!invitation.IsAccepted && !invitation.IsExpired {
			return invitation, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFriendRepository) GetPendingInvitationByToken(ctx context.Context, token string) (*entities.FriendInvitation, error) {
	for _, invitation := range f.invitations {
		if invitation.InvitationToken == token && !invitation.IsAccepted && !invitation.IsExpired {
			return invitation, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFriendRepository) GetInvitationsBySender(ctx context.Context, senderUserID string) ([]*entities.FriendInvitation, error) {
	return f.invitations, nil
}

func (f *fakeFriendRepository) MarkInvitationExpired(ctx context.Context, invitation *entities.FriendInvitation) error {
	invitation.IsExpired = true
	f.expired = append(f.expired, invitation)
	return nil
}

func (f *fakeFriendRepository) AcceptInvitation(ctx context.Context, invitation *entities.FriendInvitation, friendship *entities.Friendship) error {
	invitation.IsAccepted = true
	if friendship != nil {
		f.friendships = append(f.friendships, friendship)
	}
	return nil
}

func (f *fakeFriendRepository) GetFriendship(ctx context.Context, userID1 string, userID2 string) (*entities.Friendship, error) {
	for _, friendship := range f.friendships {
		if friendship.UserID1 == userID1 && friendship.UserID2 == userID2 {
			return friendship, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFriendRepository) GetFriendshipsByUser(ctx context.Context, userID string) ([]*entities.Friendship, error) {
	var result []*entities.Friendship
	for _, friendship := range f.friendships {
		if friendship.UserID1 == userID || friendship.UserID2 == userID {
			result = append(result, friendship)
		}
	}
	return result, nil
}

type fakeInvitationMailer struct {
	sent []string
	err  error
}

func (f *fakeInvitationMailer) SendFriendInvitation(toEmail string, senderName string, senderEmail string, invitationToken string) error {
	f.sent = append(f.sent, toEmail)
	return f.err
}

func sender() *domain.AuthUser {
	return &domain.AuthUser{ID: "user-sender", Email: "sender@example.com"}
}

func pendingInvitation(senderUserID string, recipientEmail string) *entities.FriendInvitation {
	return &entities.FriendInvitation{
		ID:              uuid.New(),
		SenderUserID:    senderUserID,
		RecipientEmail:  recipientEmail,
		InvitationToken: generateInvitationToken(),
		ExpiresAt:       time.Now().AddDate(0, 0, 7),
	}
}

func TestCreateInvitation(t *testing.T) {
	t.Run("creates invitation and sends email", func(t *testing.T) {
		repo := &fakeFriendRepository{}
		mailer := &fakeInvitationMailer{}
		service := NewFriendService(repo, mailer)

		res, err := service.CreateInvitation(context.Background(), domain.CreateFriendInvitationRequest{
			RecipientEmail: "  Friend@Example.COM ",
		}, sender())
		require.NoError(t, err)

		assert.True(t, res.Success)
		assert.True(t, res.EmailSent)
		require.Len(t, repo.invitations, 1)
		assert.Equal(t, "friend@example.com", repo.invitations[0].RecipientEmail)
		assert.Len(t, repo.invitations[0].InvitationToken, 32)
		assert.Equal(t, []string{"friend@example.com"}, mailer.sent)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		service := NewFriendService(&fakeFriendRepository{}, &fakeInvitationMailer{})

		_, err := service.CreateInvitation(context.Background(), domain.CreateFriendInvitationRequest{
			RecipientEmail: "not-an-email",
		}, sender())
		assert.ErrorIs(t, err, domain.ErrInvalidRecipientEmail)
	})

	t.Run("rejects self invitation", func(t *testing.T) {
		service := NewFriendService(&fakeFriendRepository{}, &fakeInvitationMailer{})

		_, err := service.CreateInvitation(context.Background(), domain.CreateFriendInvitationRequest{
			RecipientEmail: "SENDER@example.com",
		}, sender())
		assert.ErrorIs(t, err, domain.ErrSelfInvitation)
	})

	t.Run("rejects duplicate pending invitation", func(t *testing.T) {
		repo := &fakeFriendRepository{
			invitations: []*entities.FriendInvitation{
				pendingInvitation("user-sender", "friend@example.com"),
			},
		}
		service := NewFriendService(repo, &fakeInvitationMailer{})

		_, err := service.CreateInvitation(context.Background(), domain.CreateFriendInvitationRequest{
			RecipientEmail: "friend@example.com",
		}, sender())
		assert.ErrorIs(t, err, domain.ErrDuplicateInvitation)
	})

	t.Run("invitation stands when email fails", func(t *testing.T) {
		repo := &fakeFriendRepository{}
		service := NewFriendService(repo, &fakeInvitationMailer{err: assert.AnError})

		res, err := service.CreateInvitation(context.Background(), domain.CreateFriendInvitationRequest{
			RecipientEmail: "friend@example.com",
		}, sender())
		require.NoError(t, err)

		assert.True(t, res.Success)
		assert.False(t, res.EmailSent)
		assert.Len(t, repo.invitations, 1)
	})
}

func TestAcceptInvitation(t *testing.T) {
	recipient := &domain.AuthUser{ID: "user-recipient", Email: "friend@example.com"}

	t.Run("creates canonical friendship", func(t *testing.T) {
		invitation := pendingInvitation("user-sender", "friend@example.com")
		repo := &fakeFriendRepository{invitations: []*entities.FriendInvitation{invitation}}
		service := NewFriendService(repo, &fakeInvitationMailer{})

		res, err := service.AcceptInvitation(context.Background(), invitation.InvitationToken, recipient)
		require.NoError(t, err)

		assert.True(t, res.Success)
		assert.True(t, invitation.IsAccepted)
		require.Len(t, repo.friendships, 1)
		assert.Equal(t, "user-recipient", repo.friendships[0].UserID1)
		assert.Equal(t, "user-sender", repo.friendships[0].UserID2)
	})

	t.Run("unknown token", func(t *testing.T) {
		service := NewFriendService(&fakeFriendRepository{}, &fakeInvitationMailer{})

		_, err := service.AcceptInvitation(context.Background(), "missing-token", recipient)
		assert.ErrorIs(t, err, domain.ErrInvitationNotFound)
	})

	t.Run("expired invitation is marked", func(t *testing.T) {
		invitation := pendingInvitation("user-sender", "friend@example.com")
		invitation.ExpiresAt = time.Now().AddDate(0, 0, -1)
		repo := &fakeFriendRepository{invitations: []*entities.FriendInvitation{invitation}}
		service := NewFriendService(repo, &fakeInvitationMailer{})

		_, err := service.AcceptInvitation(context.Background(), invitation.InvitationToken, recipient)
		assert.ErrorIs(t, err, domain.ErrInvitationExpired)
		assert.True(t, invitation.IsExpired)
		assert.Len(t, repo.expired, 1)
	})

	t.Run("sender cannot accept own invitation", func(t *testing.T) {
		invitation := pendingInvitation("user-sender", "friend@example.com")
		repo := &fakeFriendRepository{invitations: []*entities.FriendInvitation{invitation}}
		service := NewFriendService(repo, &fakeInvitationMailer{})

		_, err := service.AcceptInvitation(context.Background(), invitation.InvitationToken, sender())
		assert.ErrorIs(t, err, domain.ErrAcceptOwnInvitation)
	})

	t.Run("already friends retires invitation without duplicate", func(t *testing.T) {
		invitation := pendingInvitation("user-sender", "friend@example.com")
		repo := &fakeFriendRepository{
			invitations: []*entities.FriendInvitation{invitation},
			friendships: []*entities.Friendship{
				{ID: uuid.New(), UserID1: "user-recipient", UserID2: "user-sender"},
			},
		}
		service := NewFriendService(repo, &fakeInvitationMailer{})

		res, err := service.AcceptInvitation(context.Background(), invitation.InvitationToken, recipient)
		require.NoError(t, err)

		assert.True(t, res.Success)
		assert.True(t, invitation.IsAccepted)
		assert.Len(t, repo.friendships, 1)
	})
}

func TestGetFriends(t *testing.T) {
	repo := &fakeFriendRepository{
		friendships: []*entities.Friendship{
			{ID: uuid.New(), UserID1: "user-a", UserID2: "user-sender"},
			{ID: uuid.New(), UserID1: "user-sender", UserID2: "user-z"},
		},
	}
	service := NewFriendService(repo, &fakeInvitationMailer{})

	friends, err := service.GetFriends(context.Background(), "user-sender")
	require.NoError(t, err)

	require.Len(t, friends, 2)
	assert.Equal(t, "user-a", friends[0].FriendUserID)
	assert.Equal(t, "user-z", friends[1].FriendUserID)
}

func TestCanonicalPair(t *testing.T) {
	a, b := canonicalPair("user-5", "user-2")
	assert.Equal(t, "user-2", a)
	assert.Equal(t, "user-5", b)

	a, b = canonicalPair("user-2", "user-5")
	assert.Equal(t, "user-2", a)
	assert.Equal(t, "user-5", b)
}

func TestGenerateInvitationToken(t *testing.T) {
	token := generateInvitationToken()

	assert.Len(t, token, 32)
	for _, c := range token {
		assert.True(t, strings.ContainsRune(invitationTokenAlphabet, c))
	}

	assert.NotEqual(t, token, generateInvitationToken())
}
