package routes

import (
	"geofence-attendance-backend/internal/handler"
	"geofence-attendance-backend/internal/middleware"
	"geofence-attendance-backend/internal/notify"
	"geofence-attendance-backend/internal/queue"
	"geofence-attendance-backend/internal/repository"
	"geofence-attendance-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLocationRoutes(app *fiber.App, db *gorm.DB) {
	users := repository.NewUserRepository(db)
	geofences := repository.NewGeofenceRepository(db)
	attendance := repository.NewAttendanceRepository(db)
	locations := repository.NewLocationRepository(db)
	holidays := repository.NewHolidayRepository(db)
	queueRepo := repository.NewQueueRepository(db)
	devices := repository.NewDeviceRepository(db)

	pipeline := service.NewPipeline(users, geofences, attendance, locations, holidays, notify.NewEmailNotifierFromEnv())
	coordinator := queue.NewSyncCoordinator(queueRepo, pipeline)
	hdl := handler.NewLocationHandler(pipeline, locations, queueRepo, devices, coordinator)

	api := app.Group("/api/location", middleware.Auth)

	api.Post("/track", hdl.Track)
	api.Post("/sync", hdl.Sync)
	api.Get("/history", hdl.GetHistory)
}
