package routes

import (
	"geofence-attendance-backend/internal/handler"
	"geofence-attendance-backend/internal/repository"
	"geofence-attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	users := repository.NewUserRepository(db)
	companies := repository.NewCompanyRepository(db)
	auth := usecase.NewAuthUsecase(users, companies)
	hdl := handler.NewAuthHandler(auth)

	api := app.Group("/api/auth")

	api.Post("/register", hdl.Register)
	api.Post("/login", hdl.Login)
}
