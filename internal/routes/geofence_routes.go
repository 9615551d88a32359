package routes

import (
	"geofence-attendance-backend/internal/handler"
	"geofence-attendance-backend/internal/middleware"
	"geofence-attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupGeofenceRoutes(app *fiber.App, db *gorm.DB) {
	geofences := repository.NewGeofenceRepository(db)
	hdl := handler.NewGeofenceHandler(geofences)

	api := app.Group("/api/geofences", middleware.Auth)

	api.Get("/", hdl.List)
	api.Post("/", middleware.RequireAdmin, hdl.Create)
	api.Delete("/:id", middleware.RequireAdmin, hdl.Delete)
}
