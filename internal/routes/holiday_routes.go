package routes

import (
	"geofence-attendance-backend/internal/handler"
	"geofence-attendance-backend/internal/middleware"
	"geofence-attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupHolidayRoutes(app *fiber.App, db *gorm.DB) {
	holidays := repository.NewHolidayRepository(db)
	hdl := handler.NewHolidayHandler(holidays)

	api := app.Group("/api/holidays", middleware.Auth)

	api.Get("/", hdl.List)
	api.Post("/", middleware.RequireAdmin, hdl.Create)
	api.Delete("/:id", middleware.RequireAdmin, hdl.Delete)
}
