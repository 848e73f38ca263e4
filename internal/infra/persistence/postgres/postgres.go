package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"blog/config"
	"blog/internal/domain/lifecycle"
	"blog/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// The blog runs as a single instance against one database, so the pool
// check is a coarse saturation watch rather than fine-grained wait
// accounting.
const (
	poolCheckInterval   = 30 * time.Second
	poolSaturationRatio = 0.8
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client and ties its lifetime to the fx
// lifecycle: ping on start, close on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction. Multi-step
		// writes already run inside txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	watchCtx, cancelWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go watchPool(watchCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// watchPool periodically samples connection pool stats and warns when the
// pool nears exhaustion or callers had to wait for a connection since the
// previous sample.
func watchPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(poolCheckInterval)
	defer ticker.Stop()

	lastWaitCount := sqlDB.Stats().WaitCount
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := sqlDB.Stats()
			waited := stats.WaitCount - lastWaitCount
			lastWaitCount = stats.WaitCount

			saturated := stats.MaxOpenConnections > 0 &&
				float64(stats.InUse) >= float64(stats.MaxOpenConnections)*poolSaturationRatio

			if waited == 0 && !saturated {
				continue
			}

			logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool under pressure",
				slog.Int64("waitsSinceLastCheck", waited),
				slog.Duration("waitDurationTotal", stats.WaitDuration),
				slog.Int("inUseConns", stats.InUse),
				slog.Int("idleConns", stats.Idle),
				slog.Int("maxOpenConns", stats.MaxOpenConnections),
			)
		}
	}
}
