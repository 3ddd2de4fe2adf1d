package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/greenledger/auth-service/config"
	"github.com/greenledger/auth-service/db"
	"github.com/greenledger/auth-service/internal/auth/cache"
	"github.com/greenledger/auth-service/internal/auth/handler"
	"github.com/greenledger/auth-service/internal/auth/password"
	repo "github.com/greenledger/auth-service/internal/auth/repository/postgres"
	"github.com/greenledger/auth-service/internal/auth/service"
	"github.com/greenledger/auth-service/internal/auth/totp"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error("redis unavailable", "error", err)
		os.Exit(1)
	}

	repository := repo.NewPostgresRepository(dbPool)
	ephemeralCache := cache.NewRedisCache(redisClient)
	hasher := password.NewHasher()
	totpEngine := totp.NewEngine(cfg.TotpIssuer)
	tokenService := service.NewTokenService(cfg.JWTSecret, hasher)
	authService := service.NewAuthService(repository, repository, ephemeralCache,
		repository, tokenService, hasher, totpEngine, logger)
	authHandler := handler.NewAuthHandler(authService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	logger.Info("starting auth service", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
