//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"hotel-booking-core/cmd/bootstrap"
	"hotel-booking-core/cmd/bootstrap/components"
	"hotel-booking-core/internal/pkg/config"
	"hotel-booking-core/tests/common/dbtest"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

const appStartTimeout = 30 * time.Second

// SharedSuite runs the real application against a PostgreSQL container and an
// in-process redis, so the cached catalog goes through the redis store.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *miniredis.Miniredis
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pool, dbConfig := prepareDatabase(t, startPostgres(t))
	s.DB = pool
	s.Redis = miniredis.RunT(t)

	s.Config = config.NewTestConfig()
	s.Config.DB = dbConfig
	s.Config.Cache.Driver = config.CacheDriverRedis
	s.Config.Cache.RedisURL = "redis://" + s.Redis.Addr() + "/0"

	s.Router = startApp(t, pool, s.Config)
}

// SetupSubTest gives every s.Run case a freshly seeded database and an empty cache.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
	s.Redis.FlushAll()
}

// startApp wires the production modules around the test pool and config. The
// app is stopped when t finishes.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.CacheModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), appStartTimeout)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start application")
	require.NotNil(t, router, "application started without a router")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop application", "error", err.Error())
		}
	})
	return router
}
