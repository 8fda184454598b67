package telemetry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	otelpyroscope "github.com/grafana/otel-profiling-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	shutdownTimeout        = 10 * time.Second
	defaultMetricsInterval = time.Minute
)

// Config selects which signals are exported. All of them go to the same
// OTLP/gRPC collector.
type Config struct {
	Endpoint       string
	Insecure       bool
	ServiceName    string
	ServiceVersion string

	Traces        bool
	SamplingRatio float64

	Metrics         bool
	MetricsInterval time.Duration

	Logs bool
}

func (c Config) any() bool { return c.Traces || c.Metrics || c.Logs }

// Pipeline owns the SDK providers for every enabled signal and installs them
// as the OpenTelemetry globals. Disabled signals keep the global no-ops.
type Pipeline struct {
	log     *zap.Logger
	service string

	traces  *sdktrace.TracerProvider
	metrics *sdkmetric.MeterProvider
	logs    *sdklog.LoggerProvider

	mu           sync.Mutex
	spanProfiles bool
}

// NewPipeline starts the exporters cfg asks for. A partial start is rolled
// back before the error is returned.
func NewPipeline(ctx context.Context, cfg Config, log *zap.Logger) (*Pipeline, error) {
	p := &Pipeline{log: log, service: cfg.ServiceName}
	if !cfg.any() {
		log.Info("Telemetry export disabled")
		return p, nil
	}

	res, err := newResource(cfg.ServiceName, cfg.ServiceVersion)
	if err != nil {
		return nil, err
	}

	signals := []struct {
		name    string
		enabled bool
		start   func(context.Context, Config, *resource.Resource) error
	}{
		{"traces", cfg.Traces, p.startTraces},
		{"metrics", cfg.Metrics, p.startMetrics},
		{"logs", cfg.Logs, p.startLogs},
	}
	for _, s := range signals {
		if !s.enabled {
			continue
		}
		if err := s.start(ctx, cfg, res); err != nil {
			_ = p.Shutdown(ctx)
			return nil, fmt.Errorf("failed to start %s export: %w", s.name, err)
		}
	}

	log.Info("Telemetry export started",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("service_name", cfg.ServiceName),
		zap.Bool("traces", cfg.Traces),
		zap.Bool("metrics", cfg.Metrics),
		zap.Bool("logs", cfg.Logs),
	)
	return p, nil
}

func (p *Pipeline) startTraces(ctx context.Context, cfg Config, res *resource.Resource) error {
	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return err
	}

	p.traces = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(samplerFor(cfg.SamplingRatio)),
	)
	otel.SetTracerProvider(p.traces)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return nil
}

func (p *Pipeline) startMetrics(ctx context.Context, cfg Config, res *resource.Resource) error {
	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return err
	}

	interval := cfg.MetricsInterval
	if interval <= 0 {
		interval = defaultMetricsInterval
	}
	p.metrics = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval))),
	)
	otel.SetMeterProvider(p.metrics)
	return nil
}

func (p *Pipeline) startLogs(ctx context.Context, cfg Config, res *resource.Resource) error {
	opts := []otlploggrpc.Option{otlploggrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlploggrpc.WithInsecure())
	}
	exporter, err := otlploggrpc.New(ctx, opts...)
	if err != nil {
		return err
	}

	p.logs = sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)
	global.SetLoggerProvider(p.logs)
	return nil
}

// samplerFor honours the parent's decision for partial ratios so a trace is
// never half sampled.
func samplerFor(ratio float64) sdktrace.Sampler {
	switch {
	case ratio >= 1:
		return sdktrace.AlwaysSample()
	case ratio <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
}

func (p *Pipeline) TracesEnabled() bool  { return p != nil && p.traces != nil }
func (p *Pipeline) MetricsEnabled() bool { return p != nil && p.metrics != nil }
func (p *Pipeline) LogsEnabled() bool    { return p != nil && p.logs != nil }

// Tracer falls back to the global provider when traces are not exported.
func (p *Pipeline) Tracer(name string, opts ...trace.TracerOption) trace.Tracer {
	if !p.TracesEnabled() {
		return otel.GetTracerProvider().Tracer(name, opts...)
	}
	return p.traces.Tracer(name, opts...)
}

// Meter falls back to the global provider when metrics are not exported.
func (p *Pipeline) Meter(name string, opts ...metric.MeterOption) metric.Meter {
	if !p.MetricsEnabled() {
		return otel.GetMeterProvider().Meter(name, opts...)
	}
	return p.metrics.Meter(name, opts...)
}

// EnableSpanProfiles links CPU profiles to spans. It only has an effect once
// and only while traces are exported; call it after the profiler started.
func (p *Pipeline) EnableSpanProfiles() bool {
	if !p.TracesEnabled() {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.spanProfiles {
		otel.SetTracerProvider(otelpyroscope.NewTracerProvider(p.traces))
		p.spanProfiles = true
		p.log.Info("Span profiles enabled")
	}
	return true
}

// Flush exports whatever is buffered without stopping anything.
func (p *Pipeline) Flush(ctx context.Context) error {
	if p == nil {
		return nil
	}
	var errs []error
	if p.traces != nil {
		errs = append(errs, p.traces.ForceFlush(ctx))
	}
	if p.metrics != nil {
		errs = append(errs, p.metrics.ForceFlush(ctx))
	}
	if p.logs != nil {
		errs = append(errs, p.logs.ForceFlush(ctx))
	}
	return errors.Join(errs...)
}

// Shutdown flushes and stops every started provider.
func (p *Pipeline) Shutdown(ctx context.Context) error {
	if p == nil || !(p.TracesEnabled() || p.MetricsEnabled() || p.LogsEnabled()) {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var errs []error
	if p.logs != nil {
		if err := p.logs.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("logs: %w", err))
		}
	}
	if p.metrics != nil {
		if err := p.metrics.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics: %w", err))
		}
	}
	if p.traces != nil {
		if err := p.traces.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("traces: %w", err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("failed to shut down telemetry: %w", err)
	}
	p.log.Info("Telemetry export stopped")
	return nil
}
