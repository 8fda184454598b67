package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func spanContext(t *testing.T) (context.Context, trace.SpanContext) {
	t.Helper()
	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	return trace.ContextWithSpanContext(context.Background(), sc), sc
}

func TestFromContext(t *testing.T) {
	t.Run("no logger yields nop", func(t *testing.T) {
		l := FromContext(context.Background())
		require.NotNil(t, l)
		assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
	})

	t.Run("returns attached logger", func(t *testing.T) {
		base, _ := observed()
		ctx := WithContext(context.Background(), base)
		assert.Same(t, base, FromContext(ctx))
	})
}

func TestWithRequestID(t *testing.T) {
	base, logs := observed()

	ctx, l := WithRequestID(context.Background(), base, "req-42")
	l.Info("handled")

	assert.Equal(t, "req-42", GetRequestID(ctx))
	assert.Same(t, l, FromContext(ctx))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "req-42", logs.All()[0].ContextMap()["request_id"])
}

func TestWithIdentity(t *testing.T) {
	base, logs := observed()

	ctx, l := WithIdentity(context.Background(), base, "u-1", "alice", false)
	l.Info("bill paid")

	assert.Equal(t, "u-1", GetUserID(ctx))
	assert.Equal(t, "alice", GetUsername(ctx))

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "u-1", fields["user_id"])
	assert.Equal(t, "alice", fields["username"])
	assert.Equal(t, false, fields["privileged"])
}

func TestGetters_EmptyContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestID(ctx))
	assert.Empty(t, GetUserID(ctx))
	assert.Empty(t, GetUsername(ctx))
}

func TestCorrelate(t *testing.T) {
	t.Run("bare context leaves logger unchanged", func(t *testing.T) {
		base, _ := observed()
		assert.Same(t, base, Correlate(context.Background(), base))
	})

	t.Run("adds trace request and caller", func(t *testing.T) {
		base, logs := observed()
		ctx, sc := spanContext(t)
		ctx, _ = WithRequestID(ctx, zap.NewNop(), "req-7")
		ctx, _ = WithIdentity(ctx, zap.NewNop(), "u-9", "warden", true)

		Correlate(ctx, base).Info("room created")

		fields := logs.All()[0].ContextMap()
		assert.Equal(t, sc.TraceID().String(), fields["trace_id"])
		assert.Equal(t, sc.SpanID().String(), fields["span_id"])
		assert.Equal(t, "req-7", fields["request_id"])
		assert.Equal(t, "u-9", fields["user_id"])
	})

	t.Run("invalid span is ignored", func(t *testing.T) {
		base, logs := observed()
		ctx := trace.ContextWithSpanContext(context.Background(), trace.SpanContext{})
		ctx, _ = WithRequestID(ctx, zap.NewNop(), "req-8")

		Correlate(ctx, base).Info("x")

		fields := logs.All()[0].ContextMap()
		assert.NotContains(t, fields, "trace_id")
		assert.Equal(t, "req-8", fields["request_id"])
	})
}
