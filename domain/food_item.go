package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddFoodItem    = "food item added successfully"
	MessageSuccessUpdateFoodItem = "food item updated successfully"
	MessageSuccessDeleteFoodItem = "food item deleted successfully"
	MessageSuccessGetFoodItems   = "food items retrieved successfully"
	MessageSuccessUploadPhoto    = "food photo uploaded successfully"

	MessageFailedAddFoodItem    = "failed to add food item"
	MessageFailedUpdateFoodItem = "failed to update food item"
	MessageFailedDeleteFoodItem = "failed to delete food item"
	MessageFailedGetFoodItems   = "failed to retrieve food items"
	MessageFailedUploadPhoto    = "failed to upload food photo"

	ErrFoodItemNotFound      = errors.New("food item not found")
	ErrInvalidExpirationDate = errors.New("invalid expiration date")
	ErrNoFieldsToUpdate      = errors.New("no updates provided")
)

type (
	CreateFoodItemRequest struct {
		Name            string  `json:"name" validate:"required"`
		Description     *string `json:"description" validate:"omitempty"`
		PhotoURL        *string `json:"photo_url" validate:"omitempty"`
		ExpirationDate  string  `json:"expiration_date" validate:"required"`
		Category        *string `json:"category" validate:"omitempty"`
		StorageLocation *string `json:"storage_location" validate:"omitempty"`
	}

	// UpdateFoodItemRequest distinguishes absent fields from provided ones:
	// only non-nil fields are written.
	UpdateFoodItemRequest struct {
		Name            *string `json:"name" validate:"omitempty,min=1"`
		Description     *string `json:"description" validate:"omitempty"`
		PhotoURL        *string `json:"photo_url" validate:"omitempty"`
		ExpirationDate  *string `json:"expiration_date" validate:"omitempty"`
		Category        *string `json:"category" validate:"omitempty"`
		StorageLocation *string `json:"storage_location" validate:"omitempty"`
		IsConsumed      *bool   `json:"is_consumed" validate:"omitempty"`
		IsExpired       *bool   `json:"is_expired" validate:"omitempty"`
		Notes           *string `json:"notes" validate:"omitempty"`
	}

	UploadFoodPhotoRequest struct {
		Photo *multipart.FileHeader `json:"photo" form:"photo" validate:"required"`
	}

	FoodItemResponse struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		Description     *string   `json:"description,omitempty"`
		PhotoURL        *string   `json:"photo_url,omitempty"`
		ExpirationDate  time.Time `json:"expiration_date"`
		Category        *string   `json:"category,omitempty"`
		StorageLocation *string   `json:"storage_location,omitempty"`
		IsConsumed      bool      `json:"is_consumed"`
		IsExpired       bool      `json:"is_expired"`
		Notes           *string   `json:"notes,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
		UpdatedAt       time.Time `json:"updated_at"`
	}
)
