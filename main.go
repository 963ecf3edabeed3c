package main

import (
	"log"
	"os"

	"foodconnect-backend/cmd/config"
	migration "foodconnect-backend/cmd/database/migrate"
	"foodconnect-backend/internal/utils"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed migrating database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed setting up application: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8000"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
