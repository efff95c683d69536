package bootstrap

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"hotel-booking-core/internal/pkg/cache"
	"hotel-booking-core/internal/pkg/config"

	"go.uber.org/fx"
)

const redisConnectTimeout = 5 * time.Second

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCacheStore,
	),
)

// NewCacheStore picks the backend from CACHE_DRIVER.
func NewCacheStore(lc fx.Lifecycle, cfg config.Config) (cache.Store, error) {
	if strings.ToLower(cfg.Cache.Driver) != config.CacheDriverRedis {
		slog.Info("using in-memory cache", "driver", cfg.Cache.Driver)
		return cache.NewMemoryStore(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	client, err := cache.NewRedisClient(ctx, cfg.Cache.RedisURL)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	slog.Info("using redis cache", "prefix", cfg.Cache.KeyPrefix)
	return cache.NewRedisStore(client, cfg.Cache.KeyPrefix), nil
}
