package routes

import (
	"leftknovers-backend/internal/api/handlers"
	"leftknovers-backend/internal/middleware"
	"leftknovers-backend/pkg/identity"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	AuthHandler         handlers.AuthHandler
	FoodHandler         handlers.FoodHandler
	NotificationHandler handlers.NotificationHandler
	FriendHandler       handlers.FriendHandler
	AnalyticsHandler    handlers.AnalyticsHandler
	ExportHandler       handlers.ExportHandler
	Middleware          middleware.Middleware
	IdentityService     identity.IdentityService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.FoodItems()
	c.Notifications()
	c.Friends()
	c.Analytics()
	c.Export()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api")
	{
		auth.Get("/oauth/google/redirect_url", c.AuthHandler.GetOAuthRedirectURL)
		auth.Post("/sessions", c.AuthHandler.CreateSession)
		auth.Get("/logout", c.AuthHandler.Logout)
		auth.Get("/users/me", c.Middleware.AuthMiddleware(c.IdentityService), c.AuthHandler.Me)
	}
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/food-items", c.Middleware.AuthMiddleware(c.IdentityService))

	// Fixed paths before the parameterized ones.
	foodItems.Get("/expiring", c.FoodHandler.GetExpiringFoodItems)
	foodItems.Get("/log", c.FoodHandler.GetFoodLog)

	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Put("/:id", c.FoodHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)
	foodItems.Post("/:id/photo", c.FoodHandler.UploadFoodPhoto)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api", c.Middleware.AuthMiddleware(c.IdentityService))
	{
		notifications.Get("/notification-preferences", c.NotificationHandler.GetPreferences)
		notifications.Put("/notification-preferences/:itemId", c.NotificationHandler.UpdatePreference)
		notifications.Post("/notifications/send", c.NotificationHandler.SendNotifications)
		notifications.Post("/notifications/expiring", c.NotificationHandler.GetExpiringSummary)
	}
}

func (c *Config) Friends() {
	friends := c.App.Group("/api", c.Middleware.AuthMiddleware(c.IdentityService))
	{
		friends.Post("/friend-invitations", c.FriendHandler.CreateInvitation)
		friends.Get("/friend-invitations", c.FriendHandler.GetInvitations)
		friends.Post("/friend-invitations/:token/accept", c.FriendHandler.AcceptInvitation)
		friends.Get("/friends", c.FriendHandler.GetFriends)
	}
}

func (c *Config) Analytics() {
	c.App.Get("/api/analytics", c.Middleware.AuthMiddleware(c.IdentityService), c.AnalyticsHandler.GetAnalytics)
}

func (c *Config) Export() {
	c.App.Get("/api/export", c.Middleware.AuthMiddleware(c.IdentityService), c.ExportHandler.ExportData)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
