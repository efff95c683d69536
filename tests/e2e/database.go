//go:build e2e

package e2e

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"hotel-booking-core/internal/infra/db"
	"hotel-booking-core/internal/pkg/config"
	"hotel-booking-core/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	schemaFile       = "migrations/001_initial_schema.sql"
	createDBAttempts = 5
	dbOpTimeout      = 15 * time.Second
)

// prepareDatabase creates an isolated database, applies the schema and seeds
// the reference catalog. The database is dropped when t finishes.
func prepareDatabase(t *testing.T, info ContainerInfo) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()

	name := "hbc_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	createDatabase(t, info, name)

	dbConfig := config.DBConfig{
		Host:     info.Host,
		Port:     info.Port.Port(),
		User:     postgresUser,
		Password: postgresPass,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbOpTimeout)
	defer cancel()

	pool, closePool, err := db.Connect(ctx, dbConfig)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(closePool)

	schema, err := readSchema()
	require.NoError(t, err, "failed to locate schema")
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err, "failed to apply schema")

	require.NoError(t, dbtest.SeedReferenceData(pool), "failed to seed reference data")
	return pool, dbConfig
}

// createDatabase retries because CREATE DATABASE from parallel test processes
// can collide on the template database lock.
func createDatabase(t *testing.T, info ContainerInfo, name string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), dbOpTimeout)
	defer cancel()

	admin, err := pgxpool.New(ctx, info.DSN("postgres"))
	require.NoError(t, err, "admin connection failed")
	defer admin.Close()

	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == createDBAttempts {
			break
		}
		slog.Warn("retrying database creation", "attempt", attempt, "error", err.Error())
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "failed to create test database")

	// registered before the pool cleanup, so it runs after the pool is closed
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), dbOpTimeout)
		defer cancel()
		admin, err := pgxpool.New(ctx, info.DSN("postgres"))
		if err != nil {
			slog.Warn("cleanup connection failed", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err.Error())
		}
	})
}

// readSchema walks up from the package directory to the module root.
func readSchema() ([]byte, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	for {
		if _, statErr := os.Stat(filepath.Join(dir, "go.mod")); statErr == nil {
			return os.ReadFile(filepath.Join(dir, schemaFile))
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, errors.New("module root not found")
		}
		dir = parent
	}
}
