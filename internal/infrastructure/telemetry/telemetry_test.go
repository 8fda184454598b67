package telemetry

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestPipeline_Disabled(t *testing.T) {
	ctx := context.Background()

	p, err := NewPipeline(ctx, Config{ServiceName: "hostel"}, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, p.TracesEnabled())
	assert.False(t, p.MetricsEnabled())
	assert.False(t, p.LogsEnabled())
	assert.False(t, p.EnableSpanProfiles())
	assert.NotNil(t, p.Tracer("test"))
	assert.NotNil(t, p.Meter("test"))
	assert.NoError(t, p.Flush(ctx))
	assert.NoError(t, p.Shutdown(ctx))

	var none *Pipeline
	assert.False(t, none.MetricsEnabled())
	assert.NoError(t, none.Shutdown(ctx))

	prof, err := NewProfiler(ProfilerConfig{}, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, prof.IsEnabled())
	assert.NoError(t, prof.Stop())
}

func TestPipeline_ShutdownStopsProviders(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	p := &Pipeline{
		log:     zap.NewNop(),
		traces:  sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)),
		metrics: sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewManualReader())),
	}
	assert.True(t, p.TracesEnabled())
	assert.True(t, p.MetricsEnabled())

	_, span := p.Tracer("test").Start(context.Background(), "room.create")
	span.End()
	require.Len(t, recorder.Ended(), 1)

	require.NoError(t, p.Flush(context.Background()))
	require.NoError(t, p.Shutdown(context.Background()))

	_, late := p.traces.Tracer("test").Start(context.Background(), "after.shutdown")
	late.End()
	assert.Len(t, recorder.Ended(), 1)
}

func TestNewProfiler_RequiresServerAndName(t *testing.T) {
	_, err := NewProfiler(ProfilerConfig{Enabled: true, ApplicationName: "hostel"}, zap.NewNop())
	assert.ErrorContains(t, err, "server address")

	_, err = NewProfiler(ProfilerConfig{Enabled: true, ServerAddress: "http://localhost:4040"}, zap.NewNop())
	assert.ErrorContains(t, err, "application name")
}

func TestSamplerFor(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), samplerFor(1).Description())
	assert.Equal(t, sdktrace.NeverSample().Description(), samplerFor(0).Description())
	assert.Contains(t, samplerFor(0.25).Description(), "TraceIDRatioBased{0.25}")
}

func TestBridge_DisabledReturnsBase(t *testing.T) {
	base := zap.NewNop()
	assert.Same(t, base, (&Pipeline{}).Bridge(base, zapcore.InfoLevel))
	var none *Pipeline
	assert.Same(t, base, none.Bridge(base, zapcore.InfoLevel))
}

func TestMinLevelCore(t *testing.T) {
	inner, logs := observer.New(zapcore.DebugLevel)
	core := &minLevelCore{Core: inner, min: zapcore.WarnLevel}
	log := zap.New(core).With(zap.String("component", "test"))

	log.Info("dropped")
	log.Warn("kept")
	log.Error("kept too")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "kept", logs.All()[0].Message)
	assert.Equal(t, "test", logs.All()[0].ContextMap()["component"])
}

func TestSanitizeLabels(t *testing.T) {
	pairs := sanitizeLabels(map[string]string{
		"Route":      "/api/v1/bills/:id",
		"user_id":    "8b0d",
		"empty":      "",
		"Bad-Key!":   "x",
		"operation":  strings.Repeat("a", MaxLabelValueLength+10),
		"request_id": "r-1",
	})

	assert.Equal(t, []string{
		"bad_key", "x",
		"operation", strings.Repeat("a", MaxLabelValueLength),
		"route", "/api/v1/bills/:id",
	}, pairs)
	assert.Nil(t, sanitizeLabels(nil))
}

func TestWithProfilingLabels_RunsFunction(t *testing.T) {
	ran := 0
	WithProfilingLabels(context.Background(), HTTPRequestLabels("/api/v1/rooms", "GET"), func(context.Context) { ran++ })
	WithProfilingLabels(context.Background(), nil, func(context.Context) { ran++ })
	assert.Equal(t, 2, ran)
	assert.Equal(t, map[string]string{"operation": "receipt.render"}, OperationLabels("receipt.render"))
}

func TestOperationOf(t *testing.T) {
	assert.Equal(t, "select", operationOf(`SELECT * FROM "rooms"`))
	assert.Equal(t, "insert", operationOf("  INSERT INTO bills"))
	assert.Equal(t, "update", operationOf("update\ncomplaints set"))
	assert.Equal(t, "other", operationOf("PRAGMA foreign_keys"))
	assert.Equal(t, "other", operationOf(""))
}

func TestRegisterDBMetrics_RecordsQueries(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := RegisterDBMetrics(db, mp.Meter("test"), zap.NewNop())
	require.NoError(t, err)
	defer m.Stop()

	type probe struct {
		ID   uint
		Name string
	}
	require.NoError(t, db.AutoMigrate(&probe{}))
	require.NoError(t, db.Create(&probe{Name: "a"}).Error)

	var out []probe
	require.NoError(t, db.Find(&out).Error)
	assert.Len(t, out, 1)
	db.Raw("SELECT * FROM missing_table").Scan(&[]probe{})

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	seen := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, metric := range sm.Metrics {
			seen[metric.Name] = true
		}
	}
	assert.True(t, seen["db_query_duration_seconds"])
	assert.True(t, seen["db_query_errors_total"])
}

func TestDBMetrics_RecordPool(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := NewDBMetrics(mp.Meter("test"), zap.NewNop())
	require.NoError(t, err)

	m.recordPool(context.Background(), sql.DBStats{OpenConnections: 4, InUse: 3, Idle: 1, WaitCount: 9})

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, metric := range sm.Metrics {
			if g, ok := metric.Data.(metricdata.Gauge[int64]); ok {
				got[metric.Name] = g.DataPoints[0].Value
			}
		}
	}
	assert.Equal(t, map[string]int64{
		"db_pool_open_connections":   4,
		"db_pool_in_use_connections": 3,
		"db_pool_idle_connections":   1,
		"db_pool_wait_count":         9,
	}, got)
}

func TestInstruments_NilMeter(t *testing.T) {
	in := NewInstruments(nil)
	c := in.Counter("x_total", "{x}", "x")
	c.Inc(context.Background())
	assert.ErrorIs(t, in.Err(), ErrNoMeter)
}

func TestSpanAnnotator_MarksFailedAndSlowQueries(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	a := spanAnnotator{slow: time.Nanosecond}
	require.NoError(t, registerAroundCallbacks(db, "test_timing", a.start, a.finish))

	ctx, span := tp.Tracer("test").Start(context.Background(), "bills.list")
	db.WithContext(ctx).Raw("SELECT * FROM missing_table").Scan(&struct{}{})
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)

	attrs := map[string]bool{}
	for _, kv := range ended[0].Attributes() {
		attrs[string(kv.Key)] = true
	}
	assert.True(t, attrs["db.slow_query"])
	assert.True(t, attrs["db.rows_affected"])
}

func TestTraceDatabase_InstallsPlugin(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, TraceDatabase(db, DBTracing{System: "sqlite"}, zap.NewNop()))
	assert.Error(t, TraceDatabase(db, DBTracing{System: "sqlite"}, zap.NewNop()), "plugin registered twice")
}

func TestEndSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := tp.Tracer("test")

	_, ok := tracer.Start(context.Background(), "ok")
	EndSpan(ok, nil)
	_, failed := tracer.Start(context.Background(), "failed")
	EndSpan(failed, errors.New("boom"))

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, codes.Ok, ended[0].Status().Code)
	assert.Equal(t, codes.Error, ended[1].Status().Code)
	assert.Equal(t, "", GetTraceID(context.Background()))
}
