package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/coffeeist/go-coffeeist-backend/config"
	"github.com/coffeeist/go-coffeeist-backend/internal/store"
)

// OpenFirestore connects the document store with a bounded dial.
func OpenFirestore(ctx context.Context, cfg *config.FirebaseConfig) (*store.Firestore, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("FIREBASE_PROJECT_ID is not set")
	}

	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fs, err := store.OpenFirestore(cctx, cfg.ProjectID, cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("firestore connect: %w", err)
	}
	return fs, nil
}

// OpenRedis connects and pings the cache. An empty addr disables caching and
// returns a nil client, which the cache layer treats as a no-op.
func OpenRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
