package telemetry

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultPoolSampleInterval = 15 * time.Second

// DBMetrics records query latency and failures per verb and table and
// samples the connection pool.
type DBMetrics struct {
	latency  Histogram
	failures Counter
	open     Gauge
	inUse    Gauge
	idle     Gauge
	waits    Gauge

	logger *zap.Logger
	stop   chan struct{}
	once   sync.Once
}

func NewDBMetrics(meter metric.Meter, logger *zap.Logger) (*DBMetrics, error) {
	in := NewInstruments(meter)
	m := &DBMetrics{
		latency:  in.Histogram("db_query_duration_seconds", "s", "Database query latency", DBDurationBuckets...),
		failures: in.Counter("db_query_errors_total", "{query}", "Failed database queries"),
		open:     in.Gauge("db_pool_open_connections", "{connection}", "Open connections"),
		inUse:    in.Gauge("db_pool_in_use_connections", "{connection}", "Connections in use"),
		idle:     in.Gauge("db_pool_idle_connections", "{connection}", "Idle connections"),
		waits:    in.Gauge("db_pool_wait_count", "{wait}", "Connections waited for"),
		logger:   logger,
		stop:     make(chan struct{}),
	}
	if err := in.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordQuery records one finished statement. Not-found is not a failure.
func (m *DBMetrics) RecordQuery(ctx context.Context, operation, table string, d time.Duration, err error) {
	attrs := []attribute.KeyValue{AttrDBOperation.String(operation), AttrDBTable.String(table)}
	m.latency.Seconds(ctx, d, attrs...)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		m.failures.Inc(ctx, attrs...)
	}
}

// SamplePool records the pool gauges every interval until Stop or ctx ends.
func (m *DBMetrics) SamplePool(ctx context.Context, sqlDB *sql.DB, interval time.Duration) {
	if sqlDB == nil {
		return
	}
	if interval <= 0 {
		interval = defaultPoolSampleInterval
	}
	m.logger.Debug("Sampling connection pool", zap.Duration("interval", interval))
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-m.stop:
				return
			case <-ticker.C:
				m.recordPool(ctx, sqlDB.Stats())
			}
		}
	}()
}

func (m *DBMetrics) recordPool(ctx context.Context, s sql.DBStats) {
	m.open.Set(ctx, int64(s.OpenConnections))
	m.inUse.Set(ctx, int64(s.InUse))
	m.idle.Set(ctx, int64(s.Idle))
	m.waits.Set(ctx, s.WaitCount)
}

func (m *DBMetrics) Stop() {
	m.once.Do(func() { close(m.stop) })
}

type queryClockKey struct{}

// RegisterDBMetrics creates the database instruments on meter and times
// every GORM operation on db.
func RegisterDBMetrics(db *gorm.DB, meter metric.Meter, logger *zap.Logger) (*DBMetrics, error) {
	m, err := NewDBMetrics(meter, logger)
	if err != nil {
		return nil, err
	}

	start := func(tx *gorm.DB) {
		if tx.Statement.Context != nil {
			tx.Statement.Context = context.WithValue(tx.Statement.Context, queryClockKey{}, time.Now())
		}
	}
	finish := func(tx *gorm.DB) {
		ctx := tx.Statement.Context
		if ctx == nil {
			return
		}
		if began, ok := ctx.Value(queryClockKey{}).(time.Time); ok {
			m.RecordQuery(ctx, operationOf(tx.Statement.SQL.String()), tx.Statement.Table, time.Since(began), tx.Error)
		}
	}
	if err := registerAroundCallbacks(db, "db_metrics", start, finish); err != nil {
		return nil, err
	}
	return m, nil
}

// operationOf is the lower-cased SQL verb, or "other".
func operationOf(query string) string {
	verb, _, _ := strings.Cut(strings.TrimSpace(query), " ")
	verb, _, _ = strings.Cut(verb, "\n")
	switch verb = strings.ToLower(verb); verb {
	case "select", "insert", "update", "delete":
		return verb
	default:
		return "other"
	}
}
