package analytics

import (
	"context"
	"testing"
	"time"

	"leftknovers-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyticsRepository struct {
	total    int64
	consumed map[string]int64
	expired  map[string]int64
}

func (f *fakeAnalyticsRepository) CountItems(ctx context.Context, userID string, filter CountFilter) (int64, error) {
	return f.total, nil
}

func (f *fakeAnalyticsRepository) CountConsumedItems(ctx context.Context, userID string, filter CountFilter) (int64, error) {
	return f.consumed[filter.Category], nil
}

func (f *fakeAnalyticsRepository) CountExpiredItems(ctx context.Context, userID string, filter CountFilter) (int64, error) {
	return f.expired[filter.Category], nil
}

func TestGetAnalytics(t *testing.T) {
	t.Run("computes waste percentage", func(t *testing.T) {
		repo := &fakeAnalyticsRepository{
			total:    10,
			consumed: map[string]int64{"": 6, "Dairy": 4, "Meat": 2},
			expired:  map[string]int64{"": 4, "Dairy": 3, "Meat": 1},
		}
		service := NewAnalyticsService(repo)

		res, err := service.GetAnalytics(context.Background(), "user-1", "", "")
		require.NoError(t, err)

		assert.Equal(t, int64(10), res.TotalItems)
		assert.Equal(t, int64(6), res.EatenBeforeExpiry)
		assert.Equal(t, int64(4), res.Expired)
		assert.InDelta(t, 40.0, res.WastePercentage, 0.001)
	})

	t.Run("zero items means zero waste", func(t *testing.T) {
		service := NewAnalyticsService(&fakeAnalyticsRepository{})

		res, err := service.GetAnalytics(context.Background(), "user-1", "", "")
		require.NoError(t, err)

		assert.Equal(t, int64(0), res.TotalItems)
		assert.Equal(t, 0.0, res.WastePercentage)
	})

	t.Run("six month trend ends with current month", func(t *testing.T) {
		service := NewAnalyticsService(&fakeAnalyticsRepository{})

		res, err := service.GetAnalytics(context.Background(), "user-1", "", "")
		require.NoError(t, err)

		require.Len(t, res.MonthlyData, 6)
		assert.Equal(t, time.Now().Format("Jan"), res.MonthlyData[5].Month)
	})

	t.Run("category breakdown drops empty categories", func(t *testing.T) {
		repo := &fakeAnalyticsRepository{
			total:    5,
			consumed: map[string]int64{"Dairy": 4},
			expired:  map[string]int64{"Meat": 1},
		}
		service := NewAnalyticsService(repo)

		res, err := service.GetAnalytics(context.Background(), "user-1", "", "")
		require.NoError(t, err)

		categories := make([]string, 0, len(res.CategoryData))
		for _, entry := range res.CategoryData {
			categories = append(categories, entry.Category)
		}
		assert.Equal(t, []string{"Dairy", "Meat"}, categories)
	})

	t.Run("rejects malformed month filter", func(t *testing.T) {
		service := NewAnalyticsService(&fakeAnalyticsRepository{})

		_, err := service.GetAnalytics(context.Background(), "user-1", "June 2025", "")
		assert.ErrorIs(t, err, domain.ErrInvalidMonthFilter)
	})
}
