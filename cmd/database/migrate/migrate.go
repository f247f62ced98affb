package migration

import (
	"fmt"
	"log"

	"leftknovers-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.NotificationPreference{}); err != nil {
		log.Fatalf("Error migrating notification preference database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FriendInvitation{}); err != nil {
		log.Fatalf("Error migrating friend invitation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Friendship{}); err != nil {
		log.Fatalf("Error migrating friendship database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
