package food

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leftknovers-backend/domain"
	"leftknovers-backend/entities"
	"leftknovers-backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const expirationDateLayout = "2006-01-02"

// expiringWindowDays is the look-ahead of the "expiring soon" list.
const expiringWindowDays = 3

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.CreateFoodItemRequest, user *domain.AuthUser) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) (domain.FoodItemResponse, error)
		DeleteFoodItem(ctx context.Context, id string, userID string) error
		GetActiveFoodItems(ctx context.Context, userID string) ([]domain.FoodItemResponse, error)
		GetExpiringFoodItems(ctx context.Context, userID string) ([]domain.FoodItemResponse, error)
		GetFoodLog(ctx context.Context, userID string, month string, category string) ([]domain.FoodItemResponse, error)
		UploadFoodPhoto(ctx context.Context, id string, req domain.UploadFoodPhotoRequest, userID string) (domain.FoodItemResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		s3             storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		s3:             s3,
	}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.CreateFoodItemRequest, user *domain.AuthUser) (domain.FoodItemResponse, error) {
	expirationDate, err := time.Parse(expirationDateLayout, req.ExpirationDate)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrInvalidExpirationDate
	}

	foodItem := &entities.FoodItem{
		ID:              uuid.New(),
		UserID:          user.ID,
		Name:            req.Name,
		Description:     req.Description,
		PhotoURL:        req.PhotoURL,
		ExpirationDate:  expirationDate,
		Category:        req.Category,
		StorageLocation: req.StorageLocation,
	}

	// Every item starts with a default reminder a day before expiration,
	// addressed to the owner.
	ownerEmail := user.Email
	preference := &entities.NotificationPreference{
		ID:                   uuid.New(),
		UserID:               user.ID,
		NotificationInterval: "24h",
		IsEnabled:            true,
		NotificationEmail:    &ownerEmail,
	}

	if err := s.foodRepository.AddFoodItemWithPreference(ctx, foodItem, preference); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) (domain.FoodItemResponse, error) {
	if !hasUpdates(req) {
		return domain.FoodItemResponse{}, domain.ErrNoFieldsToUpdate
	}

	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}

	if req.Name != nil {
		foodItem.Name = *req.Name
	}
	if req.Description != nil {
		foodItem.Description = req.Description
	}
	if req.PhotoURL != nil {
		foodItem.PhotoURL = req.PhotoURL
	}
	if req.ExpirationDate != nil {
		expirationDate, err := time.Parse(expirationDateLayout, *req.ExpirationDate)
		if err != nil {
			return domain.FoodItemResponse{}, domain.ErrInvalidExpirationDate
		}
		foodItem.ExpirationDate = expirationDate
	}
	if req.Category != nil {
		foodItem.Category = req.Category
	}
	if req.StorageLocation != nil {
		foodItem.StorageLocation = req.StorageLocation
	}
	if req.IsConsumed != nil {
		foodItem.IsConsumed = *req.IsConsumed
	}
	if req.IsExpired != nil {
		foodItem.IsExpired = *req.IsExpired
	}
	if req.Notes != nil {
		foodItem.Notes = req.Notes
	}

	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id string, userID string) error {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.PhotoURL != nil && *foodItem.PhotoURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(*foodItem.PhotoURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.foodRepository.DeleteFoodItem(ctx, id, userID)
}

func (s *foodService) GetActiveFoodItems(ctx context.Context, userID string) ([]domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetActiveFoodItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toFoodItemResponses(foodItems), nil
}

func (s *foodService) GetExpiringFoodItems(ctx context.Context, userID string) ([]domain.FoodItemResponse, error) {
	// Expirations are stored at date granularity (midnight UTC), so the range
	// starts at the beginning of today or items expiring today would be missed.
	now := time.Now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	foodItems, err := s.foodRepository.GetFoodItemsByExpiryRange(ctx, userID, startOfDay, now.AddDate(0, 0, expiringWindowDays))
	if err != nil {
		return nil, err
	}
	return toFoodItemResponses(foodItems), nil
}

func (s *foodService) GetFoodLog(ctx context.Context, userID string, month string, category string) ([]domain.FoodItemResponse, error) {
	var startDate, endDate *time.Time
	if month != "" {
		monthStart, err := time.Parse("2006-01", month)
		if err != nil {
			return nil, domain.ErrInvalidMonthFilter
		}
		monthEnd := monthStart.AddDate(0, 1, 0)
		startDate, endDate = &monthStart, &monthEnd
	}

	foodItems, err := s.foodRepository.GetFoodLog(ctx, userID, startDate, endDate, category, 100)
	if err != nil {
		return nil, err
	}
	return toFoodItemResponses(foodItems), nil
}

func (s *foodService) UploadFoodPhoto(ctx context.Context, id string, req domain.UploadFoodPhotoRequest, userID string) (domain.FoodItemResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}

	fileName := fmt.Sprintf("food-item-%s", foodItem.ID.String())
	var objectKey string
	var uploadErr error

	if foodItem.PhotoURL != nil && *foodItem.PhotoURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(*foodItem.PhotoURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Photo, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Photo, "food-items", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Photo, "food-items", storage.AllowImage...)
	}
	if uploadErr != nil {
		return domain.FoodItemResponse{}, uploadErr
	}

	photoURL := s.s3.GetPublicLinkKey(objectKey)
	foodItem.PhotoURL = &photoURL

	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

func hasUpdates(req domain.UpdateFoodItemRequest) bool {
	return req.Name != nil ||
		req.Description != nil ||
		req.PhotoURL != nil ||
		req.ExpirationDate != nil ||
		req.Category != nil ||
		req.StorageLocation != nil ||
		req.IsConsumed != nil ||
		req.IsExpired != nil ||
		req.Notes != nil
}

func toFoodItemResponse(item *entities.FoodItem) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Description:     item.Description,
		PhotoURL:        item.PhotoURL,
		ExpirationDate:  item.ExpirationDate,
		Category:        item.Category,
		StorageLocation: item.StorageLocation,
		IsConsumed:      item.IsConsumed,
		IsExpired:       item.IsExpired,
		Notes:           item.Notes,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func toFoodItemResponses(items []*entities.FoodItem) []domain.FoodItemResponse {
	responses := make([]domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toFoodItemResponse(item))
	}
	return responses
}
