package routes

import (
	"geofence-attendance-backend/internal/handler"
	"geofence-attendance-backend/internal/middleware"
	"geofence-attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB) {
	attendance := repository.NewAttendanceRepository(db)
	hdl := handler.NewAttendanceHandler(attendance)

	api := app.Group("/api/attendance", middleware.Auth)

	api.Get("/my", hdl.GetMyAttendance)
	api.Get("/status", hdl.GetStatus)
	api.Get("/company", middleware.RequireAdmin, hdl.GetCompanyAttendance)
}
