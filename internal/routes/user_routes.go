package routes

import (
	"geofence-attendance-backend/internal/handler"
	"geofence-attendance-backend/internal/middleware"
	"geofence-attendance-backend/internal/repository"
	"geofence-attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	users := repository.NewUserRepository(db)
	companies := repository.NewCompanyRepository(db)
	auth := usecase.NewAuthUsecase(users, companies)
	hdl := handler.NewUserHandler(users, auth)

	api := app.Group("/api/users", middleware.Auth)

	api.Get("/me", hdl.GetMyProfile)
	api.Put("/me", hdl.UpdateMyProfile)
	api.Get("/", middleware.RequireAdmin, hdl.ListCompanyUsers)
	api.Post("/", middleware.RequireAdmin, hdl.CreateEmployee)
	api.Delete("/:id", middleware.RequireAdmin, hdl.DeleteEmployee)
}
