//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestRepogemWithMySQL tests the repogem CLI with a MySQL history backend.
func TestRepogemWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "repogem",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/repogem", host, port.Port())

	// Set environment variables
	_ = os.Setenv("REPOGEM_HISTORY_BACKEND", "mysql")
	_ = os.Setenv("REPOGEM_HISTORY_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("REPOGEM_HISTORY_BACKEND") }()
	defer func() { _ = os.Unsetenv("REPOGEM_HISTORY_DB_CONNECT") }()

	runHistoryFlow(t)
}

// TestRepogemWithPostgres tests the repogem CLI with a PostgreSQL history backend.
func TestRepogemWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("REPOGEM_HISTORY_BACKEND", "postgresql")
	_ = os.Setenv("REPOGEM_HISTORY_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("REPOGEM_HISTORY_BACKEND") }()
	defer func() { _ = os.Unsetenv("REPOGEM_HISTORY_DB_CONNECT") }()

	runHistoryFlow(t)
}

// runHistoryFlow exercises the tracked pipeline plus every history subcommand
// against whatever backend the environment points at.
func runHistoryFlow(t *testing.T) {
	input := writeFixtureInput(t)

	// Run migrations on the fresh database
	err := runRepogemCommand(t, "history", "migrate")
	require.NoError(t, err)

	// Run a tracked pipeline command
	err = runRepogemCommand(t, "rank", input, "--limit", "3")
	require.NoError(t, err)

	// Run repogem history status
	err = runRepogemCommand(t, "history", "status")
	require.NoError(t, err)

	// Run repogem summary (second tracked run)
	err = runRepogemCommand(t, "summary", input)
	require.NoError(t, err)

	// Run repogem history clear
	err = runRepogemCommand(t, "history", "clear")
	require.NoError(t, err)
}
