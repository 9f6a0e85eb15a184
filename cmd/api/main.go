package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/coffeeist/go-coffeeist-backend/config"
	"github.com/coffeeist/go-coffeeist-backend/internal/auth"
	"github.com/coffeeist/go-coffeeist-backend/internal/bootstrap"
	"github.com/coffeeist/go-coffeeist-backend/internal/cache"
	"github.com/coffeeist/go-coffeeist-backend/internal/observ"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := observ.NewLogger(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	fs, err := bootstrap.OpenFirestore(ctx, &cfg.Firebase)
	if err != nil {
		logger.Fatal("firestore", zap.Error(err))
	}
	defer fs.Close()

	redisClient, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		logger.Fatal("redis", zap.Error(err))
	}
	if redisClient == nil {
		logger.Warn("REDIS_ADDR not set, inventory caching disabled")
	}

	authClient, err := auth.InitializeFirebase(&cfg.Firebase)
	if err != nil {
		if cfg.App.Environment == "production" {
			logger.Fatal("firebase auth", zap.Error(err))
		}
		logger.Warn("firebase auth unavailable, requests use X-User-Id", zap.Error(err))
		authClient = nil
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "coffeeist-backend",
		Version:     cfg.App.Version,
		Store:       fs,
		Cache:       cache.New(redisClient, cfg.Redis.CacheTTL),
		Redis:       redisClient,
		AuthClient:  authClient,
		Log:         logger,
	})

	logger.Info("listening", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
