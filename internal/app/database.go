package app

import (
	"database/sql"
	"fmt"

	"github.com/hostel/backend/internal/infrastructure/config"
	"github.com/hostel/backend/internal/infrastructure/logger"
	"github.com/hostel/backend/internal/infrastructure/migration"
	"github.com/hostel/backend/internal/infrastructure/persistence"
	"github.com/hostel/backend/internal/infrastructure/persistence/models"
	"github.com/hostel/backend/internal/infrastructure/telemetry"
	"github.com/hostel/backend/migrations"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// OpenDatabase connects with the zap-backed GORM logger and installs query
// tracing when enabled. SQLite databases are created from the models since
// the SQL migrations target Postgres.
func OpenDatabase(cfg *config.Config, log *zap.Logger) (*persistence.Database, error) {
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), cfg.Database.SlowQuery)

	db, err := persistence.Open(&cfg.Database, gormLog)
	if err != nil {
		return nil, err
	}

	if cfg.Telemetry.DBTraceEnabled {
		tracing := telemetry.DBTracing{
			System:        "postgresql",
			WithVariables: cfg.Telemetry.DBLogFullSQL,
			SlowQuery:     cfg.Database.SlowQuery,
		}
		if db.Driver == persistence.DriverSQLite {
			tracing.System = "sqlite"
		}
		if err := telemetry.TraceDatabase(db.DB, tracing, log); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to register database tracing: %w", err)
		}
	}

	if db.Driver == persistence.DriverSQLite {
		if err := db.DB.AutoMigrate(models.AllModels()...); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
		}
		log.Info("SQLite schema migrated", zap.String("path", cfg.Database.SQLitePath))
	}

	return db, nil
}

// OpenMigrator opens a Postgres connection and a migrator reading from dir,
// or from the migrations compiled into the binary when dir is empty. The
// returned close function releases both.
func OpenMigrator(cfg *config.Config, dir string, log *zap.Logger) (*migration.Migrator, func(), error) {
	if cfg.Database.Driver != persistence.DriverPostgres {
		return nil, nil, fmt.Errorf("SQL migrations require the postgres driver, got %q", cfg.Database.Driver)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	src := migration.Embedded(migrations.FS)
	if dir != "" {
		src = migration.Dir(dir)
	}
	m, err := migration.Open(db, src, log)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	closeFn := func() {
		if err := m.Close(); err != nil {
			log.Warn("Failed to close migrator", zap.Error(err))
		}
		_ = db.Close()
	}
	return m, closeFn, nil
}
