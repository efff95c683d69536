package bootstrap

import (
	"context"
	"time"

	"hotel-booking-core/internal/infra/db"
	"hotel-booking-core/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const dbConnectTimeout = 10 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

// NewDB fails startup when PostgreSQL is unreachable within dbConnectTimeout.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	pool, closePool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(closePool))
	return pool, nil
}
