package analytics

import (
	"context"
	"time"

	"leftknovers-backend/domain"
)

// foodCategories is the fixed breakdown list shown in the analytics view.
var foodCategories = []string{
	"Leftovers",
	"Dairy",
	"Meat",
	"Vegetables",
	"Fruits",
	"Bread/Bakery",
	"Other",
}

const trendMonths = 6

type (
	AnalyticsService interface {
		GetAnalytics(ctx context.Context, userID string, month string, category string) (domain.AnalyticsResponse, error)
	}

	analyticsService struct {
		analyticsRepository AnalyticsRepository
	}
)

func NewAnalyticsService(analyticsRepository AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepository: analyticsRepository}
}

func (s *analyticsService) GetAnalytics(ctx context.Context, userID string, month string, category string) (domain.AnalyticsResponse, error) {
	filter := CountFilter{Category: category}
	if month != "" {
		monthStart, err := time.Parse("2006-01", month)
		if err != nil {
			return domain.AnalyticsResponse{}, domain.ErrInvalidMonthFilter
		}
		monthEnd := monthStart.AddDate(0, 1, 0)
		filter.StartDate, filter.EndDate = &monthStart, &monthEnd
	}

	total, err := s.analyticsRepository.CountItems(ctx, userID, filter)
	if err != nil {
		return domain.AnalyticsResponse{}, err
	}
	eaten, err := s.analyticsRepository.CountConsumedItems(ctx, userID, filter)
	if err != nil {
		return domain.AnalyticsResponse{}, err
	}
	expired, err := s.analyticsRepository.CountExpiredItems(ctx, userID, filter)
	if err != nil {
		return domain.AnalyticsResponse{}, err
	}

	wastePercentage := 0.0
	if total > 0 {
		wastePercentage = float64(expired) / float64(total) * 100
	}

	monthlyData, err := s.monthlyTrend(ctx, userID, category)
	if err != nil {
		return domain.AnalyticsResponse{}, err
	}

	categoryData, err := s.categoryBreakdown(ctx, userID, filter)
	if err != nil {
		return domain.AnalyticsResponse{}, err
	}

	return domain.AnalyticsResponse{
		TotalItems:        total,
		EatenBeforeExpiry: eaten,
		Expired:           expired,
		WastePercentage:   wastePercentage,
		MonthlyData:       monthlyData,
		CategoryData:      categoryData,
	}, nil
}

func (s *analyticsService) monthlyTrend(ctx context.Context, userID string, category string) ([]domain.MonthlyAnalytics, error) {
	now := time.Now()
	monthlyData := make([]domain.MonthlyAnalytics, 0, trendMonths)

	for i := trendMonths - 1; i >= 0; i-- {
		month := now.AddDate(0, -i, 0)
		monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
		monthEnd := monthStart.AddDate(0, 1, 0)

		filter := CountFilter{StartDate: &monthStart, EndDate: &monthEnd, Category: category}

		eaten, err := s.analyticsRepository.CountConsumedItems(ctx, userID, filter)
		if err != nil {
			return nil, err
		}
		expired, err := s.analyticsRepository.CountExpiredItems(ctx, userID, filter)
		if err != nil {
			return nil, err
		}

		monthlyData = append(monthlyData, domain.MonthlyAnalytics{
			Month:   monthStart.Format("Jan"),
			Eaten:   eaten,
			Expired: expired,
		})
	}

	return monthlyData, nil
}

func (s *analyticsService) categoryBreakdown(ctx context.Context, userID string, filter CountFilter) ([]domain.CategoryAnalytics, error) {
	categoryData := make([]domain.CategoryAnalytics, 0, len(foodCategories))

	for _, category := range foodCategories {
		categoryFilter := CountFilter{
			StartDate: filter.StartDate,
			EndDate:   filter.EndDate,
			Category:  category,
		}

		eaten, err := s.analyticsRepository.CountConsumedItems(ctx, userID, categoryFilter)
		if err != nil {
			return nil, err
		}
		expired, err := s.analyticsRepository.CountExpiredItems(ctx, userID, categoryFilter)
		if err != nil {
			return nil, err
		}

		if eaten > 0 || expired > 0 {
			categoryData = append(categoryData, domain.CategoryAnalytics{
				Category: category,
				Eaten:    eaten,
				Expired:  expired,
			})
		}
	}

	return categoryData, nil
}
