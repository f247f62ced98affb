package domain

import (
	"time"

	"leftknovers-backend/entities"
)

var (
	MessageFailedExport = "failed to export data"
)

type (
	ExportUser struct {
		ID    string  `json:"id"`
		Email string  `json:"email"`
		Name  *string `json:"name"`
	}

	ExportResponse struct {
		User                    ExportUser                         `json:"user"`
		ExportedAt              time.Time                          `json:"exported_at"`
		FoodItems               []*entities.FoodItem               `json:"food_items"`
		NotificationPreferences []*entities.NotificationPreference `json:"notification_preferences"`
	}
)
