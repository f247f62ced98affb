package export

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
)

type fakeFoodRepository struct {
	items []*entities.FoodItem
}

func (f *fakeFoodRepository) AddFoodItemWithPreference(ctx context.Context, foodItem *entities.FoodItem, preference *entities.NotificationPreference) error {
	return nil
}

func (f *fakeFoodRepository) GetFoodItemByID(ctx context.Context, id string, userID string) (*entities.FoodItem, error) {
	return nil, nil
}

func (f *fakeFoodRepository) UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return nil
}

func (f *fakeFoodRepository) DeleteFoodItem(ctx context.Context, id string, userID string) error {
	return nil
}

func (f *fakeFoodRepository) GetActiveFoodItems(ctx context.Context, userID string) ([]*entities.FoodItem, error) {
	return nil, nil
}

func (f *fakeFoodRepository) GetFoodItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.FoodItem, error) {
	return nil, nil
}

func (f *fakeFoodRepository) GetFoodLog(ctx context.Context, userID string, startDate, endDate *time.Time, category string, limit int) ([]*entities.FoodItem, error) {
	return nil, nil
}

func (f *fakeFoodRepository) GetAllFoodItems(ctx context.Context, userID string) ([]*entities.FoodItem, error) {
	return f.items, nil
}

type fakePreferenceRepository struct {
	preferences []*entities.NotificationPreference
}

func (f *fakePreferenceRepository) GetPreferencesByUser(ctx context.Context, userID string) ([]*entities.NotificationPreference, error) {
	return f.preferences, nil
}

func (f *fakePreferenceRepository) GetPreferenceByItem(ctx context.Context, foodItemID string, userID string) (*entities.NotificationPreference, error) {
	return nil, nil
}

func (f *fakePreferenceRepository) CreatePreference(ctx context.Context, preference *entities.NotificationPreference) error {
	return nil
}

func (f *fakePreferenceRepository) UpdatePreference(ctx context.Context, preference *entities.NotificationPreference) error {
	return nil
}

func (f *fakePreferenceRepository) GetEnabledPreferencesWithActiveItems(ctx context.Context, userID string) ([]*entities.NotificationPreference, error) {
	return nil, nil
}

func (f *fakePreferenceRepository) MarkNotificationSent(ctx context.Context, preferenceID uuid.UUID, sentAt time.Time) error {
	return nil
}

func (f *fakePreferenceRepository) GetItemsExpiringBefore(ctx context.Context, userID string, cutoff time.Time) ([]*entities.FoodItem, error) {
	return nil, nil
}

func exportItem(name string) *entities.FoodItem {
	return &entities.FoodItem{
		ID:             uuid.New(),
		UserID:         "user-1",
		Name:           name,
		ExpirationDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestExportCSV(t *testing.T) {
	foodRepo := &fakeFoodRepository{
		items: []*entities.FoodItem{
			exportItem("Milk"),
			exportItem("Soup, leftover"),
		},
	}
	service := NewExportService(foodRepo, &fakePreferenceRepository{})

	csv, err := service.ExportCSV(context.Background(), &domain.AuthUser{ID: "user-1", Email: "owner@example.com"})
	require.NoError(t, err)

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(csvHeaders, ","), lines[0])
	assert.Contains(t, lines[1], "Milk")
	assert.Contains(t, lines[2], `"Soup, leftover"`)
	assert.Contains(t, lines[1], "2025-06-15")
}

func TestExportJSON(t *testing.T) {
	name := "Leftie"
	user := &domain.AuthUser{
		ID:             "user-1",
		Email:          "owner@example.com",
		GoogleUserData: &domain.GoogleUserData{Name: &name},
	}

	foodRepo := &fakeFoodRepository{items: []*entities.FoodItem{exportItem("Milk")}}
	preferenceRepo := &fakePreferenceRepository{
		preferences: []*entities.NotificationPreference{
			{ID: uuid.New(), UserID: "user-1", NotificationInterval: "24h", IsEnabled: true},
		},
	}
	service := NewExportService(foodRepo, preferenceRepo)

	res, err := service.ExportJSON(context.Background(), user)
	require.NoError(t, err)

	assert.Equal(t, "user-1", res.User.ID)
	assert.Equal(t, "owner@example.com", res.User.Email)
	require.NotNil(t, res.User.Name)
	assert.Equal(t, "Leftie", *res.User.Name)
	assert.Len(t, res.FoodItems, 1)
	assert.Len(t, res.NotificationPreferences, 1)
	assert.WithinDuration(t, time.Now(), res.ExportedAt, time.Minute)
}

func TestCSVField(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"plain value", "Milk", "Milk"},
		{"comma is quoted", "Soup, leftover", `"Soup, leftover"`},
		{"quote is doubled", `say "cheese"`, `"say ""cheese"""`},
		{"empty value", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, csvField(tt.value))
		})
	}
}

func TestCSVRow(t *testing.T) {
	description := "From Tuesday's dinner"
	item := exportItem("Milk")
	item.Description = &description
	item.IsConsumed = true

	row := csvRow(item)

	require.Len(t, row, len(csvHeaders))
	assert.Equal(t, item.ID.String(), row[0])
	assert.Equal(t, "Milk", row[1])
	assert.Equal(t, "From Tuesday's dinner", row[2])
	assert.Equal(t, "", row[3])
	assert.Equal(t, "2025-06-15", row[4])
	assert.Equal(t, "true", row[7])
	assert.Equal(t, "false", row[8])
}
