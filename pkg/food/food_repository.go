package food

import (
	"context"
	"time"

	"leftknovers-backend/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodItemWithPreference(ctx context.Context, foodItem *entities.FoodItem, preference *entities.NotificationPreference) error
		GetFoodItemByID(ctx context.Context, id string, userID string) (*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		DeleteFoodItem(ctx context.Context, id string, userID string) error
		GetActiveFoodItems(ctx context.Context, userID string) ([]*entities.FoodItem, error)
		GetFoodItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.FoodItem, error)
		GetFoodLog(ctx context.Context, userID string, startDate, endDate *time.Time, category string, limit int) ([]*entities.FoodItem, error)
		GetAllFoodItems(ctx context.Context, userID string) ([]*entities.FoodItem, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

// AddFoodItemWithPreference creates the item and its default notification
// preference as one unit so a crash cannot leave an item without a preference.
func (r *foodRepository) AddFoodItemWithPreference(ctx context.Context, foodItem *entities.FoodItem, preference *entities.NotificationPreference) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(foodItem).Error; err != nil {
			return err
		}
		preference.FoodItemID = foodItem.ID
		return tx.Create(preference).Error
	})
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string, userID string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(foodItem).Error
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id string, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.FoodItem{}).Error
}

func (r *foodRepository) GetActiveFoodItems(ctx context.Context, userID string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_consumed = ? AND is_expired = ?", userID, false, false).
		Order("expiration_date asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

func (r *foodRepository) GetFoodItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_consumed = ? AND is_expired = ? AND expiration_date BETWEEN ? AND ?",
			userID, false, false, startDate, endDate).
		Order("expiration_date asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

func (r *foodRepository) GetFoodLog(ctx context.Context, userID string, startDate, endDate *time.Time, category string, limit int) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	query := r.db.WithContext(ctx).
		Where("user_id = ? AND (is_consumed = ? OR is_expired = ?)", userID, true, true)

	if startDate != nil && endDate != nil {
		query = query.Where("created_at >= ? AND created_at < ?", *startDate, *endDate)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Order("updated_at desc").Limit(limit).Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

func (r *foodRepository) GetAllFoodItems(ctx context.Context, userID string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}
