package export

import (
	"context"
	"strconv"
	"strings"
	"time"

	"leftknovers-backend/domain"
	"leftknovers-backend/entities"
	"leftknovers-backend/pkg/food"
	"leftknovers-backend/pkg/notification"
)

// csvHeaders is the fixed column set of the CSV export.
var csvHeaders = []string{
	"id", "name", "description", "photo_url", "expiration_date",
	"category", "storage_location", "is_consumed", "is_expired",
	"created_at", "updated_at",
}

type (
	ExportService interface {
		ExportJSON(ctx context.Context, user *domain.AuthUser) (domain.ExportResponse, error)
		ExportCSV(ctx context.Context, user *domain.AuthUser) (string, error)
	}

	exportService struct {
		foodRepository         food.FoodRepository
		notificationRepository notification.NotificationRepository
	}
)

func NewExportService(foodRepository food.FoodRepository, notificationRepository notification.NotificationRepository) ExportService {
	return &exportService{
		foodRepository:         foodRepository,
		notificationRepository: notificationRepository,
	}
}

func (s *exportService) ExportJSON(ctx context.Context, user *domain.AuthUser) (domain.ExportResponse, error) {
	foodItems, err := s.foodRepository.GetAllFoodItems(ctx, user.ID)
	if err != nil {
		return domain.ExportResponse{}, err
	}

	preferences, err := s.notificationRepository.GetPreferencesByUser(ctx, user.ID)
	if err != nil {
		return domain.ExportResponse{}, err
	}

	var name *string
	if user.GoogleUserData != nil {
		name = user.GoogleUserData.Name
	}

	return domain.ExportResponse{
		User: domain.ExportUser{
			ID:    user.ID,
			Email: user.Email,
			Name:  name,
		},
		ExportedAt:              time.Now(),
		FoodItems:               foodItems,
		NotificationPreferences: preferences,
	}, nil
}

func (s *exportService) ExportCSV(ctx context.Context, user *domain.AuthUser) (string, error) {
	foodItems, err := s.foodRepository.GetAllFoodItems(ctx, user.ID)
	if err != nil {
		return "", err
	}

	rows := make([]string, 0, len(foodItems)+1)
	rows = append(rows, strings.Join(csvHeaders, ","))

	for _, item := range foodItems {
		rows = append(rows, strings.Join(csvRow(item), ","))
	}

	return strings.Join(rows, "\n"), nil
}

func csvRow(item *entities.FoodItem) []string {
	fields := []string{
		item.ID.String(),
		item.Name,
		deref(item.Description),
		deref(item.PhotoURL),
		item.ExpirationDate.Format("2006-01-02"),
		deref(item.Category),
		deref(item.StorageLocation),
		strconv.FormatBool(item.IsConsumed),
		strconv.FormatBool(item.IsExpired),
		item.CreatedAt.Format(time.RFC3339),
		item.UpdatedAt.Format(time.RFC3339),
	}

	for i, field := range fields {
		fields[i] = csvField(field)
	}
	return fields
}

// csvField quotes a value only when it contains a comma or quote, doubling
// embedded quotes.
func csvField(value string) string {
	if strings.ContainsAny(value, ",\"") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
