package routes

import (
	"geofence-attendance-backend/internal/handler"
	"geofence-attendance-backend/internal/middleware"
	"geofence-attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDeviceRoutes(app *fiber.App, db *gorm.DB) {
	devices := repository.NewDeviceRepository(db)
	hdl := handler.NewDeviceHandler(devices)

	api := app.Group("/api/devices", middleware.Auth)

	api.Post("/", hdl.Register)
	api.Get("/", hdl.ListMine)
}
