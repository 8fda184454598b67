package app

import (
	"context"

	"github.com/hostel/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Serve runs the API until ctx is cancelled, then shuts the server down and
// flushes telemetry.
func Serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	tel, log, err := SetupTelemetry(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if shutdownErr := tel.Shutdown(context.Background()); shutdownErr != nil {
			log.Error("Error shutting down telemetry", zap.Error(shutdownErr))
		}
	}()

	srv, err := NewServer(ctx, cfg, log, tel)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := srv.Close(); closeErr != nil {
			log.Error("Error releasing resources", zap.Error(closeErr))
		}
	}()

	log.Info("Starting hostel backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", Version))
	return srv.Run(ctx)
}
