package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"invoice-dashboard-backend/internal/viewcache"

	"github.com/redis/go-redis/v9"
)

// NewViewCache picks the view cache backend named by cfg.Cache.Driver.
func NewViewCache(cfg *App, log *slog.Logger) (viewcache.Store, error) {
	switch cfg.Cache.Driver {
	case "", "memory":
		return viewcache.NewMemoryStore(), nil
	case "none":
		return viewcache.Nop{}, nil
	case "redis":
		store := viewcache.NewRedisStore(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Redis.Prefix, log)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			return nil, fmt.Errorf("redis view cache: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown view cache driver %q", cfg.Cache.Driver)
	}
}
