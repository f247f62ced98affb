package entities

import (
	"time"

	"github.com/google/uuid"
)

type NotificationPreference struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodItemID           uuid.UUID  `gorm:"type:uuid;index" json:"food_item_id"`
	UserID               string     `gorm:"index" json:"user_id"`
	NotificationInterval string     `json:"notification_interval"` // "15m", "6h", "12h", "24h", "2d", "3d", "custom", "off"
	CustomMinutes        *int       `json:"custom_minutes,omitempty"`
	IsEnabled            bool       `json:"is_enabled"`
	NotificationEmail    *string    `json:"notification_email,omitempty"`
	LastNotificationSent *time.Time `json:"last_notification_sent,omitempty"`

	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID;constraint:OnDelete:CASCADE"`
	Timestamp
}
