package app

import (
	"context"
	"errors"

	"github.com/hostel/backend/internal/infrastructure/config"
	"github.com/hostel/backend/internal/infrastructure/logger"
	"github.com/hostel/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Version is reported by /health and attached to exported telemetry
var Version = "dev"

// Telemetry owns the OpenTelemetry export pipeline and the profiler
type Telemetry struct {
	Pipeline *telemetry.Pipeline
	Profiler *telemetry.Profiler
}

// SetupTelemetry starts signal export and profiling as configured. The
// returned logger is log, tee'd into the exported logs when they are enabled.
func SetupTelemetry(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Telemetry, *zap.Logger, error) {
	tc := cfg.Telemetry

	pipeline, err := telemetry.NewPipeline(ctx, telemetry.Config{
		Endpoint:        tc.CollectorEndpoint,
		Insecure:        tc.Insecure,
		ServiceName:     tc.ServiceName,
		ServiceVersion:  Version,
		Traces:          tc.Enabled,
		SamplingRatio:   tc.SamplingRatio,
		Metrics:         tc.MetricsEnabled,
		MetricsInterval: tc.MetricsInterval,
		Logs:            tc.LogsEnabled,
	}, log)
	if err != nil {
		return nil, nil, err
	}
	t := &Telemetry{Pipeline: pipeline}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Warn("Invalid log level, exporting at info", zap.String("level", cfg.Log.Level))
	}
	log = pipeline.Bridge(log, level)

	t.Profiler, err = telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:         tc.ProfilingEnabled,
		ServerAddress:   tc.ProfilingServer,
		ApplicationName: tc.ServiceName,
	}, log)
	if err != nil {
		_ = t.Shutdown(ctx)
		return nil, nil, err
	}
	if t.Profiler.IsEnabled() {
		pipeline.EnableSpanProfiles()
	}

	return t, log, nil
}

// HTTPMeter is the meter for request metrics, nil when metrics are off
func (t *Telemetry) HTTPMeter() metric.Meter {
	if !t.Pipeline.MetricsEnabled() {
		return nil
	}
	return t.Pipeline.Meter("http.server")
}

// Shutdown stops the profiler and then the export pipeline
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.Profiler != nil {
		errs = append(errs, t.Profiler.Stop())
	}
	errs = append(errs, t.Pipeline.Shutdown(ctx))
	return errors.Join(errs...)
}
