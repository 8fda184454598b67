package logger

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes GORM's output through zap. Every SQL entry is correlated
// with the request that issued it.
type GormLogger struct {
	logger    *zap.Logger
	level     gormlogger.LogLevel
	slowQuery time.Duration
}

var _ gormlogger.Interface = (*GormLogger)(nil)

// NewGormLogger creates a GORM logger named "gorm". A zero slowQuery disables
// slow query warnings. Record-not-found errors are never logged: the
// repositories turn them into NotFound domain errors.
func NewGormLogger(base *zap.Logger, level gormlogger.LogLevel, slowQuery time.Duration) *GormLogger {
	return &GormLogger{
		logger:    base.Named("gorm"),
		level:     level,
		slowQuery: slowQuery,
	}
}

// LogMode implements gormlogger.Interface
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

// Info implements gormlogger.Interface
func (l *GormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Info {
		Correlate(ctx, l.logger).Sugar().Infof(msg, data...)
	}
}

// Warn implements gormlogger.Interface
func (l *GormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Warn {
		Correlate(ctx, l.logger).Sugar().Warnf(msg, data...)
	}
}

// Error implements gormlogger.Interface
func (l *GormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Error {
		Correlate(ctx, l.logger).Sugar().Errorf(msg, data...)
	}
}

// Trace implements gormlogger.Interface. Failed statements log at error,
// slow ones at warn and the rest at debug when the level is Info.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gormlogger.ErrRecordNotFound)
	slow := l.slowQuery > 0 && elapsed > l.slowQuery

	switch {
	case failed && l.level >= gormlogger.Error:
		Correlate(ctx, l.logger).Error("SQL failed", append(l.statement(elapsed, fc), zap.Error(err))...)
	case slow && l.level >= gormlogger.Warn:
		Correlate(ctx, l.logger).Warn("Slow SQL",
			append(l.statement(elapsed, fc), zap.Duration("threshold", l.slowQuery))...)
	case l.level >= gormlogger.Info:
		Correlate(ctx, l.logger).Debug("SQL", l.statement(elapsed, fc)...)
	}
}

func (l *GormLogger) statement(elapsed time.Duration, fc func() (string, int64)) []zap.Field {
	sql, rows := fc()
	return []zap.Field{
		zap.String("sql", sql),
		zap.Int64("rows", rows),
		zap.Duration("elapsed", elapsed),
	}
}

// MapGormLogLevel maps the application log level onto GORM's. Debug and info
// show every statement; anything unrecognised shows warnings and errors.
func MapGormLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error", "fatal":
		return gormlogger.Error
	case "debug", "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
