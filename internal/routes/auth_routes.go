package routes

import (
	"leave-management-backend/internal/handler"
	"leave-management-backend/internal/repository"
	"leave-management-backend/internal/token"
	"leave-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, tokens *token.Service, log *zap.Logger) {
	users := repository.NewUserRepository(db)
	employees := repository.NewEmployeeRepository(db)

	uc := usecase.NewAuthUsecase(db, users, employees, tokens)
	hdl := handler.NewAuthHandler(uc, log)

	api := app.Group("/api/auth")
	api.Post("/register", hdl.Register)
	api.Post("/login", hdl.Login)
}
