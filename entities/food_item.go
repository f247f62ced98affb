package entities

import (
	"time"

	"github.com/google/uuid"
)

type FoodItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          string    `gorm:"index" json:"user_id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	PhotoURL        *string   `json:"photo_url,omitempty"`
	ExpirationDate  time.Time `json:"expiration_date"`
	Category        *string   `json:"category,omitempty"`
	StorageLocation *string   `json:"storage_location,omitempty"`
	IsConsumed      bool      `json:"is_consumed"`
	IsExpired       bool      `json:"is_expired"`
	Notes           *string   `json:"notes,omitempty"`

	NotificationPreference *NotificationPreference `gorm:"foreignKey:FoodItemID"`
	Timestamp
}
