package main

import (
	"fmt"

	"geofence-attendance-backend/config"
	"geofence-attendance-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env not found, using system environment variables")
	}

	config.ConnectDB()

	if err := database.Seed(config.DB); err != nil {
		panic("seeding failed: " + err.Error())
	}
}
