package main

import (
	"fmt"

	"github.com/hostel/backend/internal/app"
	"github.com/hostel/backend/internal/infrastructure/logger"
	"github.com/hostel/backend/internal/infrastructure/migration"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database schema migrations",
	}
	cmd.PersistentFlags().StringVar(&dir, "path", "", "migrations directory (default: built into the binary)")

	run := func(fn func(m *migration.Migrator, log *zap.Logger) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync(log) }()

			m, closeFn, err := app.OpenMigrator(cfg, dir, log)
			if err != nil {
				return err
			}
			defer closeFn()
			return fn(m, log)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: run(func(m *migration.Migrator, _ *zap.Logger) error {
				return m.Up()
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: run(func(m *migration.Migrator, _ *zap.Logger) error {
				return m.Steps(-1)
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show the applied schema version",
			RunE: run(func(m *migration.Migrator, log *zap.Logger) error {
				version, dirty, err := m.Version()
				if err != nil {
					return fmt.Errorf("failed to get version: %w", err)
				}
				if version == 0 {
					log.Info("No migrations applied")
					return nil
				}
				log.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
				return nil
			}),
		},
	)
	return cmd
}
