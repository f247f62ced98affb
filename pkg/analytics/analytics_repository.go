package analytics

import (
	"context"
	"time"

	"leftknovers-backend/entities"

	"gorm.io/gorm"
)

// CountFilter narrows a count to a creation window and/or category.
type CountFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
}

type (
	AnalyticsRepository interface {
		CountItems(ctx context.Context, userID string, filter CountFilter) (int64, error)
		CountConsumedItems(ctx context.Context, userID string, filter CountFilter) (int64, error)
		CountExpiredItems(ctx context.Context, userID string, filter CountFilter) (int64, error)
	}

	analyticsRepository struct {
		db *gorm.DB
	}
)

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CountItems(ctx context.Context, userID string, filter CountFilter) (int64, error) {
	var count int64
	err := r.filtered(ctx, userID, filter).Count(&count).Error
	return count, err
}

func (r *analyticsRepository) CountConsumedItems(ctx context.Context, userID string, filter CountFilter) (int64, error) {
	var count int64
	err := r.filtered(ctx, userID, filter).Where("is_consumed = ?", true).Count(&count).Error
	return count, err
}

func (r *analyticsRepository) CountExpiredItems(ctx context.Context, userID string, filter CountFilter) (int64, error) {
	var count int64
	err := r.filtered(ctx, userID, filter).Where("is_expired = ?", true).Count(&count).Error
	return count, err
}

func (r *analyticsRepository) filtered(ctx context.Context, userID string, filter CountFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entities.FoodItem{}).Where("user_id = ?", userID)

	if filter.StartDate != nil && filter.EndDate != nil {
		query = query.Where("created_at >= ? AND created_at < ?", *filter.StartDate, *filter.EndDate)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	return query
}
