package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultSlowSpan = 200 * time.Millisecond

// DBTracing configures query spans.
type DBTracing struct {
	// System is the db.system reported on spans, e.g. "postgresql".
	System string
	// WithVariables records bound query arguments. Development only: they
	// include password hashes and phone numbers.
	WithVariables bool
	// SlowQuery marks spans that run longer. Zero means 200ms.
	SlowQuery time.Duration
}

// TraceDatabase installs otelgorm on db and annotates every query span with
// its table, affected rows, failure and slowness.
func TraceDatabase(db *gorm.DB, cfg DBTracing, log *zap.Logger) error {
	if cfg.SlowQuery <= 0 {
		cfg.SlowQuery = defaultSlowSpan
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(cfg.System)}
	if !cfg.WithVariables {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	a := spanAnnotator{slow: cfg.SlowQuery}
	if err := registerAroundCallbacks(db, "otel_timing", a.start, a.finish); err != nil {
		return err
	}

	log.Info("Database tracing enabled",
		zap.String("system", cfg.System),
		zap.Bool("with_variables", cfg.WithVariables),
		zap.Duration("slow_query", cfg.SlowQuery),
	)
	return nil
}

type spanClockKey struct{}

type spanAnnotator struct {
	slow time.Duration
}

func (a spanAnnotator) start(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, spanClockKey{}, time.Now())
	}
}

func (a spanAnnotator) finish(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	if table := db.Statement.Table; table != "" {
		span.SetAttributes(attribute.String("db.sql.table", table))
	}
	if err := db.Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	began, ok := ctx.Value(spanClockKey{}).(time.Time)
	if !ok {
		return
	}
	if took := time.Since(began); took > a.slow {
		span.SetAttributes(
			attribute.Bool("db.slow_query", true),
			attribute.Int64("db.query_duration_ms", took.Milliseconds()),
		)
		span.AddEvent("slow_query", trace.WithAttributes(
			attribute.Int64("threshold_ms", a.slow.Milliseconds()),
		))
	}
}
