// Package integration runs the hostel backend against a real PostgreSQL
// started with testcontainers. The schema comes from the embedded SQL
// migrations, so these tests also cover the migration files.
package integration

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/hostel/backend/internal/app"
	"github.com/hostel/backend/internal/infrastructure/config"
	"github.com/hostel/backend/internal/infrastructure/persistence"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

const (
	testDBName     = "hostel_test"
	testDBUser     = "postgres"
	testDBPassword = "hostel123"
)

var (
	// Shared container for all tests in the package
	sharedContainer   *tcpostgres.PostgresContainer
	sharedContainerMu sync.Mutex
	sharedDBConfig    config.DatabaseConfig
)

// TestDB is a migrated PostgreSQL database
type TestDB struct {
	*persistence.Database
	Config *config.Config
	t      *testing.T
}

// NewTestDB returns a connection to the shared container, migrated to the
// latest version and emptied of rows.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbCfg := startSharedContainer(t)
	cfg := newTestConfig(t, dbCfg)

	m, closeFn, err := app.OpenMigrator(cfg, "", zap.NewNop())
	require.NoError(t, err, "Failed to open migrator")
	require.NoError(t, m.Up(), "Failed to run migrations")
	closeFn()

	gormLevel := logger.Silent
	if os.Getenv("TEST_DB_DEBUG") != "" {
		gormLevel = logger.Info
	}
	db, err := persistence.Open(&cfg.Database, logger.Default.LogMode(gormLevel))
	require.NoError(t, err, "Failed to connect to database")

	tdb := &TestDB{Database: db, Config: cfg, t: t}
	tdb.CleanTables()
	t.Cleanup(func() { _ = db.Close() })
	return tdb
}

func startSharedContainer(t *testing.T) config.DatabaseConfig {
	t.Helper()

	sharedContainerMu.Lock()
	defer sharedContainerMu.Unlock()

	if sharedContainer != nil {
		return sharedDBConfig
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase(testDBName),
		tcpostgres.WithUsername(testDBUser),
		tcpostgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")

	host, err := container.Host(ctx)
	require.NoError(t, err, "Failed to get container host")
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err, "Failed to get container port")

	sharedContainer = container
	sharedDBConfig = config.DatabaseConfig{
		Driver:   persistence.DriverPostgres,
		Host:     host,
		Port:     port.Int(),
		User:     testDBUser,
		Password: testDBPassword,
		DBName:   testDBName,
		SSLMode:  "disable",
	}
	return sharedDBConfig
}

// newTestConfig builds a development config pointing at the container, with
// every optional integration switched off.
func newTestConfig(t *testing.T, db config.DatabaseConfig) *config.Config {
	t.Helper()

	v := viper.New()
	v.Set("app.env", "test")
	v.Set("database.driver", db.Driver)
	v.Set("database.host", db.Host)
	v.Set("database.port", db.Port)
	v.Set("database.user", db.User)
	v.Set("database.password", db.Password)
	v.Set("database.dbname", db.DBName)
	v.Set("database.sslmode", db.SSLMode)
	v.Set("database.max_open_conns", 5)
	v.Set("database.max_idle_conns", 2)
	v.Set("log.level", "error")
	v.Set("http.auth_rate_limit_enabled", false)
	v.Set("receipt.hostel_name", "Integration Hostel")

	cfg, err := config.FromViper(v)
	require.NoError(t, err, "Failed to build config")
	return cfg
}

// CleanTables empties every application table
func (tdb *TestDB) CleanTables() {
	tdb.t.Helper()

	var tables []string
	err := tdb.DB.Raw(`
		SELECT tablename FROM pg_tables
		WHERE schemaname = 'public'
		AND tablename != 'schema_migrations'
	`).Scan(&tables).Error
	require.NoError(tdb.t, err, "Failed to get table names")

	for _, table := range tables {
		err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %q CASCADE", table)).Error
		require.NoError(tdb.t, err, "Failed to truncate table %s", table)
	}
}

// CleanupSharedContainer terminates the shared container. Call it from
// TestMain after m.Run.
func CleanupSharedContainer() {
	sharedContainerMu.Lock()
	defer sharedContainerMu.Unlock()

	if sharedContainer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = sharedContainer.Terminate(ctx)
		sharedContainer = nil
	}
}
