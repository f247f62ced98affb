package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	"leftknovers-backend/domain"
	"leftknovers-backend/entities"
	"leftknovers-backend/internal/utils/mailing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNotificationRepository struct {
	preferences []*entities.NotificationPreference
	markedSent  []uuid.UUID
	byItemErr   error
	created     []*entities.NotificationPreference
	updated     []*entities.NotificationPreference
}

func (f *fakeNotificationRepository) GetPreferencesByUser(ctx context.Context, userID string) ([]*entities.NotificationPreference, error) {
	return f.preferences, nil
}

func (f *fakeNotificationRepository) GetPreferenceByItem(ctx context.Context, foodItemID string, userID string) (*entities.NotificationPreference, error) {
	if f.byItemErr != nil {
		return nil, f.byItemErr
	}
	for _, preference := range f.preferences {
		if preference.FoodItemID.String() == foodItemID && preference.UserID == userID {
			return preference, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeNotificationRepository) CreatePreference(ctx context.Context, preference *entities.NotificationPreference) error {
	f.created = append(f.created, preference)
	return nil
}

func (f *fakeNotificationRepository) UpdatePreference(ctx context.Context, preference *entities.NotificationPreference) error {
	f.updated = append(f.updated, preference)
	return nil
}

func (f *fakeNotificationRepository) GetEnabledPreferencesWithActiveItems(ctx context.Context, userID string) ([]*entities.NotificationPreference, error) {
	return f.preferences, nil
}

func (f *fakeNotificationRepository) MarkNotificationSent(ctx context.Context, preferenceID uuid.UUID, sentAt time.Time) error {
	f.markedSent = append(f.markedSent, preferenceID)
	return nil
}

func (f *fakeNotificationRepository) GetItemsExpiringBefore(ctx context.Context, userID string, cutoff time.Time) ([]*entities.FoodItem, error) {
	return nil, nil
}

type fakeMailer struct {
	mu      sync.Mutex
	digests map[string][]mailing.ExpiringItem
	err     error
}

func (f *fakeMailer) SendExpirationDigest(toEmail string, userName string, items []mailing.ExpiringItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.digests == nil {
		f.digests = map[string][]mailing.ExpiringItem{}
	}
	f.digests[toEmail] = append(f.digests[toEmail], items...)
	return f.err
}

func testUser() *domain.AuthUser {
	return &domain.AuthUser{ID: "user-1", Email: "owner@example.com"}
}

func preferenceFor(item *entities.FoodItem, interval string) *entities.NotificationPreference {
	return &entities.NotificationPreference{
		ID:                   uuid.New(),
		FoodItemID:           item.ID,
		UserID:               "user-1",
		NotificationInterval: interval,
		IsEnabled:            true,
		FoodItem:             item,
	}
}

func activeItem(name string, expiresIn time.Duration) *entities.FoodItem {
	return &entities.FoodItem{
		ID:             uuid.New(),
		UserID:         "user-1",
		Name:           name,
		ExpirationDate: time.Now().Add(expiresIn),
	}
}

func TestSendDueNotifications(t *testing.T) {
	t.Run("notifies item inside window", func(t *testing.T) {
		repo := &fakeNotificationRepository{
			preferences: []*entities.NotificationPreference{
				preferenceFor(activeItem("Milk", 12*time.Hour), "24h"),
			},
		}
		mailer := &fakeMailer{}
		service := NewNotificationService(repo, mailer)

		res, err := service.SendDueNotifications(context.Background(), testUser())
		require.NoError(t, err)

		assert.True(t, res.Sent)
		assert.Equal(t, 1, res.Count)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "Milk", res.Items[0].Name)
		assert.Len(t, repo.markedSent, 1)
		assert.Len(t, mailer.digests["owner@example.com"], 1)
	})

	t.Run("skips item outside window", func(t *testing.T) {
		repo := &fakeNotificationRepository{
			preferences: []*entities.NotificationPreference{
				preferenceFor(activeItem("Cheese", 72*time.Hour), "24h"),
			},
		}
		mailer := &fakeMailer{}
		service := NewNotificationService(repo, mailer)

		res, err := service.SendDueNotifications(context.Background(), testUser())
		require.NoError(t, err)

		assert.False(t, res.Sent)
		assert.Equal(t, 0, res.Count)
		assert.Equal(t, 1, res.Debug.TotalItemsChecked)
		assert.Empty(t, repo.markedSent)
		assert.Empty(t, mailer.digests)
	})

	t.Run("skips item past grace period", func(t *testing.T) {
		repo := &fakeNotificationRepository{
			preferences: []*entities.NotificationPreference{
				preferenceFor(activeItem("Old bread", -48*time.Hour), "24h"),
			},
		}
		mailer := &fakeMailer{}
		service := NewNotificationService(repo, mailer)

		res, err := service.SendDueNotifications(context.Background(), testUser())
		require.NoError(t, err)

		assert.Equal(t, 0, res.Count)
	})

	t.Run("respects cooldown", func(t *testing.T) {
		preference := preferenceFor(activeItem("Yogurt", 1*time.Hour), "24h")
		justSent := time.Now().Add(-5 * time.Minute)
		preference.LastNotificationSent = &justSent

		repo := &fakeNotificationRepository{
			preferences: []*entities.NotificationPreference{preference},
		}
		mailer := &fakeMailer{}
		service := NewNotificationService(repo, mailer)

		res, err := service.SendDueNotifications(context.Background(), testUser())
		require.NoError(t, err)

		assert.Equal(t, 0, res.Count)
		assert.Empty(t, repo.markedSent)
	})

	t.Run("groups digests by destination email", func(t *testing.T) {
		override := "roommate@example.com"
		withOverride := preferenceFor(activeItem("Soup", 2*time.Hour), "24h")
		withOverride.NotificationEmail = &override

		repo := &fakeNotificationRepository{
			preferences: []*entities.NotificationPreference{
				preferenceFor(activeItem("Milk", 12*time.Hour), "24h"),
				withOverride,
			},
		}
		mailer := &fakeMailer{}
		service := NewNotificationService(repo, mailer)

		res, err := service.SendDueNotifications(context.Background(), testUser())
		require.NoError(t, err)

		assert.Equal(t, 2, res.Count)
		assert.Len(t, mailer.digests["owner@example.com"], 1)
		assert.Len(t, mailer.digests["roommate@example.com"], 1)
	})

	t.Run("mail failure still counts as sent", func(t *testing.T) {
		repo := &fakeNotificationRepository{
			preferences: []*entities.NotificationPreference{
				preferenceFor(activeItem("Milk", 12*time.Hour), "24h"),
			},
		}
		mailer := &fakeMailer{err: assert.AnError}
		service := NewNotificationService(repo, mailer)

		res, err := service.SendDueNotifications(context.Background(), testUser())
		require.NoError(t, err)

		assert.Equal(t, 1, res.Count)
		assert.Len(t, repo.markedSent, 1)
	})
}

func TestUpdatePreference(t *testing.T) {
	t.Run("creates from defaults when missing", func(t *testing.T) {
		repo := &fakeNotificationRepository{}
		service := NewNotificationService(repo, &fakeMailer{})

		interval := "3d"
		req := domain.UpdateNotificationPreferenceRequest{NotificationInterval: &interval}

		preference, err := service.UpdatePreference(context.Background(), uuid.NewString(), req, testUser())
		require.NoError(t, err)

		assert.Equal(t, "3d", preference.NotificationInterval)
		assert.True(t, preference.IsEnabled)
		require.NotNil(t, preference.NotificationEmail)
		assert.Equal(t, "owner@example.com", *preference.NotificationEmail)
		assert.Len(t, repo.created, 1)
	})

	t.Run("updates existing and clears stale custom minutes", func(t *testing.T) {
		item := activeItem("Milk", 12*time.Hour)
		existing := preferenceFor(item, "custom")
		custom := 90
		existing.CustomMinutes = &custom

		repo := &fakeNotificationRepository{
			preferences: []*entities.NotificationPreference{existing},
		}
		service := NewNotificationService(repo, &fakeMailer{})

		interval := "24h"
		req := domain.UpdateNotificationPreferenceRequest{NotificationInterval: &interval}

		preference, err := service.UpdatePreference(context.Background(), item.ID.String(), req, testUser())
		require.NoError(t, err)

		assert.Equal(t, "24h", preference.NotificationInterval)
		assert.Nil(t, preference.CustomMinutes)
		assert.Len(t, repo.updated, 1)
	})

	t.Run("rejects malformed item id", func(t *testing.T) {
		service := NewNotificationService(&fakeNotificationRepository{}, &fakeMailer{})

		_, err := service.UpdatePreference(context.Background(), "not-a-uuid", domain.UpdateNotificationPreferenceRequest{}, testUser())
		assert.ErrorIs(t, err, domain.ErrParseUUID)
	})
}
