package notification

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"leftknovers-backend/domain"
	"leftknovers-backend/entities"
	"leftknovers-backend/internal/utils/mailing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// Mailer abstracts the expiration digest delivery so the evaluator can be
	// tested without an SMTP server.
	Mailer interface {
		SendExpirationDigest(toEmail string, userName string, items []mailing.ExpiringItem) error
	}

	NotificationService interface {
		GetPreferences(ctx context.Context, userID string) ([]*entities.NotificationPreference, error)
		UpdatePreference(ctx context.Context, foodItemID string, req domain.UpdateNotificationPreferenceRequest, user *domain.AuthUser) (*entities.NotificationPreference, error)
		SendDueNotifications(ctx context.Context, user *domain.AuthUser) (domain.SendNotificationsResponse, error)
		GetExpiringSummary(ctx context.Context, userID string) (domain.ExpiringSummaryResponse, error)
	}

	notificationService struct {
		notificationRepository NotificationRepository
		mailer                 Mailer
	}

	smtpMailer struct{}
)

func NewSMTPMailer() Mailer {
	return smtpMailer{}
}

func (smtpMailer) SendExpirationDigest(toEmail string, userName string, items []mailing.ExpiringItem) error {
	return mailing.SendExpirationDigest(toEmail, userName, items)
}

func NewNotificationService(notificationRepository NotificationRepository, mailer Mailer) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		mailer:                 mailer,
	}
}

func (s *notificationService) GetPreferences(ctx context.Context, userID string) ([]*entities.NotificationPreference, error) {
	return s.notificationRepository.GetPreferencesByUser(ctx, userID)
}

func (s *notificationService) UpdatePreference(ctx context.Context, foodItemID string, req domain.UpdateNotificationPreferenceRequest, user *domain.AuthUser) (*entities.NotificationPreference, error) {
	itemUUID, err := uuid.Parse(foodItemID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	preference, err := s.notificationRepository.GetPreferenceByItem(ctx, foodItemID, user.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		// No preference yet for this item: create one from defaults plus the
		// provided fields.
		ownerEmail := user.Email
		preference = &entities.NotificationPreference{
			ID:                   uuid.New(),
			FoodItemID:           itemUUID,
			UserID:               user.ID,
			NotificationInterval: "24h",
			IsEnabled:            true,
			NotificationEmail:    &ownerEmail,
		}
		applyPreferenceUpdates(preference, req)
		if err := s.notificationRepository.CreatePreference(ctx, preference); err != nil {
			return nil, err
		}
		return preference, nil
	}

	applyPreferenceUpdates(preference, req)
	if err := s.notificationRepository.UpdatePreference(ctx, preference); err != nil {
		return nil, err
	}
	return preference, nil
}

func applyPreferenceUpdates(preference *entities.NotificationPreference, req domain.UpdateNotificationPreferenceRequest) {
	if req.NotificationInterval != nil {
		preference.NotificationInterval = *req.NotificationInterval
	}
	// Custom minutes are replaced wholesale: an absent value clears any stale
	// custom setting left over from a previous interval.
	preference.CustomMinutes = req.CustomMinutes
	if req.IsEnabled != nil {
		preference.IsEnabled = *req.IsEnabled
	}
	if req.NotificationEmail != nil {
		preference.NotificationEmail = req.NotificationEmail
	}
}

// SendDueNotifications is the notification evaluator: it scans the caller's
// active items with enabled preferences, decides which are due, records the
// send time, and dispatches one digest per destination email. Mail failures
// are logged only; the response reflects what was queued, not delivered.
func (s *notificationService) SendDueNotifications(ctx context.Context, user *domain.AuthUser) (domain.SendNotificationsResponse, error) {
	now := time.Now()

	preferences, err := s.notificationRepository.GetEnabledPreferencesWithActiveItems(ctx, user.ID)
	if err != nil {
		return domain.SendNotificationsResponse{}, err
	}

	var toNotify []*entities.NotificationPreference
	for _, preference := range preferences {
		if preference.FoodItem == nil {
			continue
		}

		minutesUntil := minutesUntilExpiration(preference.FoodItem.ExpirationDate, now)
		notificationMinutes := resolveNotificationMinutes(preference.NotificationInterval, preference.CustomMinutes)

		if !isDue(minutesUntil, notificationMinutes) || !cooldownElapsed(preference.LastNotificationSent, now) {
			continue
		}

		// Record the send before dispatching: a mail failure must not cause
		// an immediate retry storm on the next poll.
		if err := s.notificationRepository.MarkNotificationSent(ctx, preference.ID, now); err != nil {
			return domain.SendNotificationsResponse{}, err
		}
		toNotify = append(toNotify, preference)
	}

	groups := make(map[string][]mailing.ExpiringItem)
	notified := make([]domain.NotifiedItem, 0, len(toNotify))
	for _, preference := range toNotify {
		email := user.Email
		if preference.NotificationEmail != nil && *preference.NotificationEmail != "" {
			email = *preference.NotificationEmail
		}

		item := preference.FoodItem
		groups[email] = append(groups[email], mailing.ExpiringItem{
			Name:            item.Name,
			ExpirationDate:  item.ExpirationDate,
			Category:        item.Category,
			StorageLocation: item.StorageLocation,
		})
		notified = append(notified, domain.NotifiedItem{
			Name:           item.Name,
			ExpirationDate: item.ExpirationDate,
		})
	}

	// Groups are independent; send them concurrently and log failures.
	var wg sync.WaitGroup
	for email, items := range groups {
		wg.Add(1)
		go func(email string, items []mailing.ExpiringItem) {
			defer wg.Done()
			if err := s.mailer.SendExpirationDigest(email, user.DisplayName(), items); err != nil {
				log.Printf("Error sending expiration digest to %s: %v", email, err)
			}
		}(email, items)
	}
	wg.Wait()

	return domain.SendNotificationsResponse{
		Sent:  len(toNotify) > 0,
		Count: len(toNotify),
		Items: notified,
		Debug: domain.SendNotificationsDebug{
			TotalItemsChecked: len(preferences),
			NotificationTime:  now,
		},
	}, nil
}

func (s *notificationService) GetExpiringSummary(ctx context.Context, userID string) (domain.ExpiringSummaryResponse, error) {
	tomorrow := time.Now().Add(24 * time.Hour)

	foodItems, err := s.notificationRepository.GetItemsExpiringBefore(ctx, userID, tomorrow)
	if err != nil {
		return domain.ExpiringSummaryResponse{}, err
	}

	return domain.ExpiringSummaryResponse{
		Sent:  len(foodItems) > 0,
		Count: len(foodItems),
	}, nil
}
