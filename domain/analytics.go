package domain

import "errors"

var (
	MessageSuccessGetAnalytics = "analytics retrieved successfully"
	MessageSuccessGetFoodLog   = "food log retrieved successfully"

	MessageFailedGetAnalytics = "failed to retrieve analytics"
	MessageFailedGetFoodLog   = "failed to retrieve food log"

	ErrInvalidMonthFilter = errors.New("month filter must use YYYY-MM format")
)

type (
	MonthlyAnalytics struct {
		Month   string `json:"month"`
		Eaten   int64  `json:"eaten"`
		Expired int64  `json:"expired"`
	}

	CategoryAnalytics struct {
		Category string `json:"category"`
		Eaten    int64  `json:"eaten"`
		Expired  int64  `json:"expired"`
	}

	AnalyticsResponse struct {
		TotalItems        int64               `json:"totalItems"`
		EatenBeforeExpiry int64               `json:"eatenBeforeExpiry"`
		Expired           int64               `json:"expired"`
		WastePercentage   float64             `json:"wastePercentage"`
		MonthlyData       []MonthlyAnalytics  `json:"monthlyData"`
		CategoryData      []CategoryAnalytics `json:"categoryData"`
	}
)
