package main

import (
	"log"

	"leave-management-backend/config"
	"leave-management-backend/internal/mailer"
	"leave-management-backend/internal/routes"
	"leave-management-backend/internal/token"
	"leave-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found, using system environment variables")
	}

	zlog, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}

	tokens, err := token.NewService(token.Config{
		Secret:     config.GetEnv("JWT_SECRET", ""),
		AccessTTL:  config.GetEnvAsDuration("JWT_ACCESS_TTL", 0),
		RefreshTTL: config.GetEnvAsDuration("JWT_REFRESH_TTL", 0),
	})
	if err != nil {
		zlog.Fatal("token service init failed", zap.Error(err))
	}

	// Notifications are optional; nil keeps the review flow purely in-process.
	var notifier usecase.ReviewNotifier
	if m := mailer.NewFromEnv(zlog); m != nil {
		notifier = m
	}

	app := fiber.New()

	app.Use(cors.New())
	app.Use(logger.New())

	routes.SetupAuthRoutes(app, db, tokens, zlog)
	routes.SetupLeaveRoutes(app, db, tokens, notifier, zlog)

	port := config.GetEnv("APP_PORT", "5000")
	zlog.Info("server listening", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
