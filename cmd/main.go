package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/triquetrx/auth-microservice-sbm/config"
	"github.com/triquetrx/auth-microservice-sbm/db"
	"github.com/triquetrx/auth-microservice-sbm/internal/auth/handler"
	repo "github.com/triquetrx/auth-microservice-sbm/internal/auth/repository/postgres"
	"github.com/triquetrx/auth-microservice-sbm/internal/auth/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Env)
	slog.SetDefault(logger)

	ctx := context.Background()

	if err := db.Migrate(ctx, cfg.DBURL); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	userRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.TokenSecret, cfg.TokenTTLMinutes)
	sessionService := service.NewSessionService(userRepo, tokenService, logger)
	userService := service.NewUserService(userRepo, tokenService, cfg, logger)
	authHandler := handler.NewAuthHandler(userService, sessionService, logger)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	handler.RegisterRoutes(app, authHandler)

	logger.Info("starting auth service", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(env string) *slog.Logger {
	if env == "development" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
