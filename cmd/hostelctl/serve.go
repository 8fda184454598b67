package main

import (
	"os/signal"
	"syscall"

	_ "github.com/hostel/backend/docs"
	"github.com/hostel/backend/internal/app"
	"github.com/hostel/backend/internal/infrastructure/logger"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync(log) }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return app.Serve(ctx, cfg, log)
		},
	}
}
