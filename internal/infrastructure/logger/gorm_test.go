package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

func statement(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormLogger_Trace(t *testing.T) {
	const sql = `SELECT * FROM "bills" WHERE tenant_id = 'u-1'`
	longAgo := time.Now().Add(-time.Second)

	tests := []struct {
		name      string
		level     gormlogger.LogLevel
		begin     time.Time
		err       error
		wantLevel zapcore.Level
		wantMsg   string
	}{
		{"query at info", gormlogger.Info, time.Now(), nil, zapcore.DebugLevel, "SQL"},
		{"failure", gormlogger.Error, time.Now(), errors.New("deadlock detected"), zapcore.ErrorLevel, "SQL failed"},
		{"slow", gormlogger.Warn, longAgo, nil, zapcore.WarnLevel, "Slow SQL"},
		{"failure beats slow", gormlogger.Warn, longAgo, errors.New("timeout"), zapcore.ErrorLevel, "SQL failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, logs := observed()
			gl := NewGormLogger(base, tt.level, 100*time.Millisecond)

			gl.Trace(context.Background(), tt.begin, statement(sql, 3), tt.err)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, tt.wantMsg, entry.Message)
			assert.Equal(t, "gorm", entry.LoggerName)

			fields := entry.ContextMap()
			assert.Equal(t, sql, fields["sql"])
			assert.Equal(t, int64(3), fields["rows"])
			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), fields["error"])
			}
		})
	}
}

func TestGormLogger_TraceSuppressed(t *testing.T) {
	longAgo := time.Now().Add(-time.Second)

	tests := []struct {
		name  string
		level gormlogger.LogLevel
		slow  time.Duration
		begin time.Time
		err   error
	}{
		{"silent", gormlogger.Silent, time.Millisecond, longAgo, errors.New("boom")},
		{"record not found", gormlogger.Info, 0, time.Now(), gormlogger.ErrRecordNotFound},
		{"plain query below info", gormlogger.Warn, time.Hour, time.Now(), nil},
		{"slow threshold disabled", gormlogger.Warn, 0, longAgo, nil},
		{"slow below warn", gormlogger.Error, time.Millisecond, longAgo, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, logs := observed()
			gl := NewGormLogger(base, tt.level, tt.slow)
			called := false

			gl.Trace(context.Background(), tt.begin, func() (string, int64) {
				called = true
				return "SELECT 1", 1
			}, tt.err)

			if tt.name == "record not found" {
				// Not-found at info is still an ordinary query
				require.Equal(t, 1, logs.Len())
				assert.Equal(t, "SQL", logs.All()[0].Message)
				return
			}
			assert.Equal(t, 0, logs.Len())
			assert.False(t, called, "statement should not be rendered when nothing is logged")
		})
	}
}

func TestGormLogger_TraceCorrelatesRequest(t *testing.T) {
	base, logs := observed()
	gl := NewGormLogger(base, gormlogger.Info, 0)

	ctx, sc := spanContext(t)
	ctx, _ = WithRequestID(ctx, base, "req-db")
	ctx, _ = WithIdentity(ctx, base, "u-3", "carol", false)

	gl.Trace(ctx, time.Now(), statement("UPDATE bills SET status = 'Paid'", 1), nil)

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-db", fields["request_id"])
	assert.Equal(t, "u-3", fields["user_id"])
	assert.Equal(t, sc.TraceID().String(), fields["trace_id"])
}

func TestGormLogger_Messages(t *testing.T) {
	base, logs := observed()
	gl := NewGormLogger(base, gormlogger.Warn, 0)
	ctx := context.Background()

	gl.Info(ctx, "opened %s", "hostel")
	gl.Warn(ctx, "retrying %d", 2)
	gl.Error(ctx, "lost %s", "connection")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "retrying 2", logs.All()[0].Message)
	assert.Equal(t, "lost connection", logs.All()[1].Message)
}

func TestGormLogger_LogMode(t *testing.T) {
	base, logs := observed()
	gl := NewGormLogger(base, gormlogger.Silent, 0)

	verbose := gl.LogMode(gormlogger.Info)
	verbose.Info(context.Background(), "visible")
	gl.Info(context.Background(), "hidden")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "visible", logs.All()[0].Message)
	assert.Equal(t, gormlogger.Silent, gl.level, "LogMode must not mutate the receiver")
}

func TestMapGormLogLevel(t *testing.T) {
	tests := map[string]gormlogger.LogLevel{
		"silent":  gormlogger.Silent,
		"error":   gormlogger.Error,
		"fatal":   gormlogger.Error,
		"warn":    gormlogger.Warn,
		"INFO":    gormlogger.Info,
		"debug":   gormlogger.Info,
		"":        gormlogger.Warn,
		"verbose": gormlogger.Warn,
	}
	for in, want := range tests {
		assert.Equal(t, want, MapGormLogLevel(in), in)
	}
}
