package migration

import (
	"fmt"
	"log"

	"foodconnect-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []struct {
		name  string
		model any
	}{
		{"campus", &entities.Campus{}},
		{"user", &entities.User{}},
		{"dish", &entities.Dish{}},
		{"dish image", &entities.DishImage{}},
		{"tag", &entities.Tag{}},
		{"dish tag", &entities.DishTag{}},
		{"order", &entities.Order{}},
		{"order item", &entities.OrderItem{}},
		{"rating", &entities.Rating{}},
		{"recipe", &entities.Recipe{}},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			log.Fatalf("Error migrating %s database: %v", m.name, err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
