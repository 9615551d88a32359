package main

import (
	"fmt"

	"geofence-attendance-backend/config"
	"geofence-attendance-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env not found, using system environment variables")
	}

	config.ConnectDB()

	app := fiber.New()

	// Global middleware
	app.Use(cors.New())   // so the mobile app can call from any origin
	app.Use(logger.New()) // request log in the terminal

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupLocationRoutes(app, config.DB)
	routes.SetupAttendanceRoutes(app, config.DB)
	routes.SetupGeofenceRoutes(app, config.DB)
	routes.SetupUserRoutes(app, config.DB)
	routes.SetupDeviceRoutes(app, config.DB)
	routes.SetupHolidayRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("Server ready, listening on port :" + port)
	if err := app.Listen(":" + port); err != nil {
		panic(err)
	}
}
