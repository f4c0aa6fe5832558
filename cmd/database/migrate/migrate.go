package migration

import (
	"fmt"
	"log"

	"food-expiry-tracker/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
