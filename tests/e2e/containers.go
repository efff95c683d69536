//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib" // "pgx" driver for wait.ForSQL
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage   = "postgres:17"
	postgresPort    = nat.Port("5432/tcp")
	postgresUser    = "test"
	postgresPass    = "testpass"
	containerBudget = 3 * time.Minute
)

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container
	postgresErr       error
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// DSN points at database name inside the container.
func (c ContainerInfo) DSN(name string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPass, c.Host, c.Port.Port(), name)
}

// startPostgres launches one throwaway server per test process; every suite
// gets its own database on it.
func startPostgres(t *testing.T) ContainerInfo {
	t.Helper()

	postgresOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), containerBudget)
		defer cancel()

		postgresContainer, postgresErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        postgresImage,
				ExposedPorts: []string{string(postgresPort)},
				Env: map[string]string{
					"POSTGRES_USER":     postgresUser,
					"POSTGRES_PASSWORD": postgresPass,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				// durability is irrelevant for test data; the concurrency tests need connections
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "synchronous_commit=off",
					"-c", "full_page_writes=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL(postgresPort, "pgx", func(host string, port nat.Port) string {
					return ContainerInfo{Host: host, Port: port}.DSN("postgres")
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "hotel-booking-core-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, postgresErr, "failed to start postgres container")

	ctx := context.Background()
	port, err := postgresContainer.MappedPort(ctx, postgresPort)
	require.NoError(t, err, "failed to resolve postgres port")
	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err, "failed to resolve postgres host")

	slog.Debug("postgres container ready", "host", host, "port", port.Port())
	return ContainerInfo{Host: host, Port: port}
}
