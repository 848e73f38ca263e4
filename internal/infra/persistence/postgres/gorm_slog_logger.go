package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"blog/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Queries here are small single-table lookups; anything past this is a
// missing index or an unbounded comment fetch.
const slowQueryThreshold = 100 * time.Millisecond

// gormSlogLogger adapts the application's slog logger to GORM's logger
// interface. ErrRecordNotFound is never logged: visibility misses surface
// it on every unpublished-post lookup, so it is routine rather than an
// error.
type gormSlogLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{logger: baseLogger, level: level}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, slog.LevelInfo, logger.Info, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, slog.LevelWarn, logger.Warn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, slog.LevelError, logger.Error, msg, args...)
}

func (l *gormSlogLogger) logf(ctx context.Context, level slog.Level, minimum logger.LogLevel, msg string, args ...any) {
	if l.logger == nil || l.level < minimum {
		return
	}

	l.logger.LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		sql, rows := sqlAndRowsFn()
		l.logger.LogAttrs(ctx, slog.LevelError, "query failed",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		)
	case elapsed > slowQueryThreshold && l.level >= logger.Warn:
		sql, rows := sqlAndRowsFn()
		l.logger.LogAttrs(ctx, slog.LevelWarn, "slow query",
			slog.Duration("elapsed", elapsed),
			slog.Duration("threshold", slowQueryThreshold),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		)
	case l.level >= logger.Info:
		sql, rows := sqlAndRowsFn()
		l.logger.LogAttrs(ctx, slog.LevelInfo, "query",
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		)
	}
}
