package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/coffeeist/go-coffeeist-backend/config"
	"github.com/coffeeist/go-coffeeist-backend/internal/bootstrap"
	"github.com/coffeeist/go-coffeeist-backend/internal/catalog"
	"github.com/coffeeist/go-coffeeist-backend/internal/observ"
	"github.com/coffeeist/go-coffeeist-backend/internal/social"
	"github.com/coffeeist/go-coffeeist-backend/internal/users"
)

// The worker seeds the default catalogs on startup and keeps the denormalized
// follow counters honest on a schedule.
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

	ctx := context.Background()

	fs, err := bootstrap.OpenFirestore(ctx, &cfg.Firebase)
	if err != nil {
		logger.Fatal("firestore", zap.Error(err))
	}
	defer fs.Close()

	catalogRepo := catalog.NewRepository(fs, logger)
	seeder := catalog.NewSeeder(catalogRepo, logger)

	inserted, err := seeder.Reconcile(ctx, catalog.Defaults(cfg.Seed.CreatedBy))
	if err != nil {
		logger.Error("catalog seeding incomplete", zap.Error(err))
	}
	logger.Info("catalog seeded",
		zap.Int("brewingMethods", len(inserted.BrewingMethods)),
		zap.Int("coffeeBeans", len(inserted.CoffeeBeans)),
		zap.Int("equipment", len(inserted.Equipment)),
		zap.Int("total", inserted.Total()))

	userRepo := users.NewRepository(fs)
	followRepo := social.NewRepository(fs, logger)
	counters := social.NewCounters(followRepo, userRepo, logger)

	c := cron.New()
	if _, err := c.AddFunc(cfg.Seed.RecountSchedule, func() {
		ctx := context.Background()
		if err := counters.ReconcileAll(ctx); err != nil {
			logger.Error("follow counter sweep incomplete", zap.Error(err))
		} else {
			logger.Info("follow counters reconciled")
		}
		if _, err := seeder.Reconcile(ctx, catalog.Defaults(cfg.Seed.CreatedBy)); err != nil {
			logger.Error("catalog reseed check incomplete", zap.Error(err))
		}
	}); err != nil {
		logger.Fatal("cron schedule", zap.String("schedule", cfg.Seed.RecountSchedule), zap.Error(err))
	}
	c.Start()
	logger.Info("worker running", zap.String("recountSchedule", cfg.Seed.RecountSchedule))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	cronCtx := c.Stop()
	<-cronCtx.Done()
	logger.Info("worker stopped")
}
