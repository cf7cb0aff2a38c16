package routes

import (
	"leave-management-backend/internal/handler"
	"leave-management-backend/internal/middleware"
	"leave-management-backend/internal/repository"
	"leave-management-backend/internal/token"
	"leave-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupLeaveRoutes(app *fiber.App, db *gorm.DB, tokens *token.Service, notifier usecase.ReviewNotifier, log *zap.Logger) {
	users := repository.NewUserRepository(db)
	employees := repository.NewEmployeeRepository(db)
	leaves := repository.NewLeaveRepository(db)

	uc := usecase.NewLeaveUsecase(db, users, employees, leaves, notifier)
	hdl := handler.NewLeaveHandler(uc, log)

	api := app.Group("/api/leave", middleware.Auth(tokens))

	api.Post("/request", hdl.RequestLeave)
	api.Get("/applications", hdl.GetApplications)
	api.Put("/review/:id", hdl.ReviewLeave)
}
