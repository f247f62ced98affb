package config

import (
	"os"
	"time"

	"leftknovers-backend/internal/api/handlers"
	"leftknovers-backend/internal/api/routes"
	"leftknovers-backend/internal/middleware"
	"leftknovers-backend/internal/utils"
	"leftknovers-backend/internal/utils/storage"
	"leftknovers-backend/pkg/analytics"
	"leftknovers-backend/pkg/export"
	"leftknovers-backend/pkg/food"
	"leftknovers-backend/pkg/friend"
	"leftknovers-backend/pkg/identity"
	"leftknovers-backend/pkg/notification"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	foodRepository := food.NewFoodRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	friendRepository := friend.NewFriendRepository(db)
	analyticsRepository := analytics.NewAnalyticsRepository(db)

	// Service
	identityService := identity.NewIdentityService()
	foodService := food.NewFoodService(foodRepository, s3)
	notificationService := notification.NewNotificationService(
		notificationRepository,
		notification.NewSMTPMailer(),
	)
	friendService := friend.NewFriendService(friendRepository, friend.NewSMTPMailer())
	analyticsService := analytics.NewAnalyticsService(analyticsRepository)
	exportService := export.NewExportService(foodRepository, notificationRepository)

	// Handler
	authHandler := handlers.NewAuthHandler(identityService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService, validator)
	friendHandler := handlers.NewFriendHandler(friendService, validator)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	exportHandler := handlers.NewExportHandler(exportService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		AuthHandler:         authHandler,
		FoodHandler:         foodHandler,
		NotificationHandler: notificationHandler,
		FriendHandler:       friendHandler,
		AnalyticsHandler:    analyticsHandler,
		ExportHandler:       exportHandler,
		Middleware:          middlewares,
		IdentityService:     identityService,
	}
	routesConfig.Setup()
	return app, nil
}
