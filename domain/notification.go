package domain

import "time"

var (
	MessageSuccessGetPreferences   = "notification preferences retrieved successfully"
	MessageSuccessUpdatePreference = "notification preference updated successfully"
	MessageSuccessSendNotification = "notification check completed"

	MessageFailedGetPreferences   = "failed to retrieve notification preferences"
	MessageFailedUpdatePreference = "failed to update notification preference"
	MessageFailedSendNotification = "failed to send notifications"
)

type (
	UpdateNotificationPreferenceRequest struct {
		NotificationInterval *string `json:"notification_interval" validate:"omitempty,oneof=15m 6h 12h 24h 2d 3d custom off"`
		CustomMinutes        *int    `json:"custom_minutes" validate:"omitempty,min=1"`
		IsEnabled            *bool   `json:"is_enabled" validate:"omitempty"`
		NotificationEmail    *string `json:"notification_email" validate:"omitempty,email"`
	}

	NotifiedItem struct {
		Name           string    `json:"name"`
		ExpirationDate time.Time `json:"expiration_date"`
	}

	SendNotificationsDebug struct {
		TotalItemsChecked int       `json:"total_items_checked"`
		NotificationTime  time.Time `json:"notification_time"`
	}

	SendNotificationsResponse struct {
		Sent  bool                   `json:"sent"`
		Count int                    `json:"count"`
		Items []NotifiedItem         `json:"items"`
		Debug SendNotificationsDebug `json:"debug"`
	}

	ExpiringSummaryResponse struct {
		Sent  bool `json:"sent"`
		Count int  `json:"count"`
	}
)
