package notification

import (
	"context"
	"time"

	"leftknovers-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		GetPreferencesByUser(ctx context.Context, userID string) ([]*entities.NotificationPreference, error)
		GetPreferenceByItem(ctx context.Context, foodItemID string, userID string) (*entities.NotificationPreference, error)
		CreatePreference(ctx context.Context, preference *entities.NotificationPreference) error
		UpdatePreference(ctx context.Context, preference *entities.NotificationPreference) error
		GetEnabledPreferencesWithActiveItems(ctx context.Context, userID string) ([]*entities.NotificationPreference, error)
		MarkNotificationSent(ctx context.Context, preferenceID uuid.UUID, sentAt time.Time) error
		GetItemsExpiringBefore(ctx context.Context, userID string, cutoff time.Time) ([]*entities.FoodItem, error)
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) GetPreferencesByUser(ctx context.Context, userID string) ([]*entities.NotificationPreference, error) {
	var preferences []*entities.NotificationPreference

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&preferences).Error; err != nil {
		return nil, err
	}

	return preferences, nil
}

func (r *notificationRepository) GetPreferenceByItem(ctx context.Context, foodItemID string, userID string) (*entities.NotificationPreference, error) {
	var preference entities.NotificationPreference
	if err := r.db.WithContext(ctx).
		Where("food_item_id = ? AND user_id = ?", foodItemID, userID).
		First(&preference).Error; err != nil {
		return nil, err
	}
	return &preference, nil
}

func (r *notificationRepository) CreatePreference(ctx context.Context, preference *entities.NotificationPreference) error {
	return r.db.WithContext(ctx).Create(preference).Error
}

func (r *notificationRepository) UpdatePreference(ctx context.Context, preference *entities.NotificationPreference) error {
	return r.db.WithContext(ctx).Save(preference).Error
}

// GetEnabledPreferencesWithActiveItems joins enabled preferences with their
// items, keeping only items that are neither consumed nor expired. This is the
// evaluator's input set.
func (r *notificationRepository) GetEnabledPreferencesWithActiveItems(ctx context.Context, userID string) ([]*entities.NotificationPreference, error) {
	var preferences []*entities.NotificationPreference

	if err := r.db.WithContext(ctx).
		Joins("FoodItem").
		Where("notification_preferences.user_id = ? AND notification_preferences.is_enabled = ?", userID, true).
		Where(`"FoodItem"."is_consumed" = ? AND "FoodItem"."is_expired" = ?`, false, false).
		Order(`"FoodItem"."expiration_date" asc`).
		Find(&preferences).Error; err != nil {
		return nil, err
	}

	return preferences, nil
}

func (r *notificationRepository) MarkNotificationSent(ctx context.Context, preferenceID uuid.UUID, sentAt time.Time) error {
	return r.db.WithContext(ctx).Model(&entities.NotificationPreference{}).
		Where("id = ?", preferenceID).
		Update("last_notification_sent", sentAt).Error
}

func (r *notificationRepository) GetItemsExpiringBefore(ctx context.Context, userID string, cutoff time.Time) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_consumed = ? AND expiration_date <= ?", userID, false, cutoff).
		Order("expiration_date asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}
