package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type ctxKey int

const (
	loggerKey ctxKey = iota
	requestIDKey
	callerKey
)

// caller is the authenticated user a request runs on behalf of
type caller struct {
	userID     string
	username   string
	privileged bool
}

// WithContext attaches a logger to ctx
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger attached to ctx, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
		return l
	}
	return zap.NewNop()
}

// WithRequestID records the request ID on ctx and returns the context together
// with a logger tagged with it.
func WithRequestID(ctx context.Context, logger *zap.Logger, requestID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, requestIDKey, requestID)
	l := logger.With(zap.String("request_id", requestID))
	return WithContext(ctx, l), l
}

// WithIdentity records the authenticated caller on ctx. The returned logger
// carries user_id, username and privileged.
func WithIdentity(ctx context.Context, logger *zap.Logger, userID, username string, privileged bool) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, callerKey, caller{userID: userID, username: username, privileged: privileged})
	l := logger.With(
		zap.String("user_id", userID),
		zap.String("username", username),
		zap.Bool("privileged", privileged),
	)
	return WithContext(ctx, l), l
}

// GetRequestID returns the request ID stored by WithRequestID
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// GetUserID returns the caller's user ID stored by WithIdentity
func GetUserID(ctx context.Context) string {
	c, _ := ctx.Value(callerKey).(caller)
	return c.userID
}

// GetUsername returns the caller's username stored by WithIdentity
func GetUsername(ctx context.Context) string {
	c, _ := ctx.Value(callerKey).(caller)
	return c.username
}

// Correlate tags logger with whatever ctx knows about the current request:
// the OpenTelemetry trace and span IDs, the request ID and the caller.
// Use it for loggers that were built outside the request, such as the event
// bus or GORM.
func Correlate(ctx context.Context, logger *zap.Logger) *zap.Logger {
	var fields []zap.Field

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		fields = append(fields,
			zap.String("trace_id", sc.TraceID().String()),
			zap.String("span_id", sc.SpanID().String()),
		)
	}
	if id := GetRequestID(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if c, ok := ctx.Value(callerKey).(caller); ok && c.userID != "" {
		fields = append(fields, zap.String("user_id", c.userID))
	}

	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}
