// Package postgres implements the repositories on top of GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"abacus/config"
	"abacus/internal/domain/lifecycle"
	"abacus/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval  = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
	poolComponentLabel = "postgres-pool"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to the primary (and any replicas). The connection is verified,
// migrated when enabled, and watched for pool contention once fx starts.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 NewQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	params.Append(lifecycleHook(sqlDB, params.Config, params.Logger))

	return db, nil
}

func lifecycleHook(sqlDB *sql.DB, cfg *config.Config, logger *slog.Logger) fx.Hook {
	watchCtx, stopWatching := context.WithCancel(context.Background())

	return fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if cfg.Migration != nil && cfg.Migration.Enabled {
				if err := Migrate(ctx, sqlDB); err != nil {
					return err
				}
				logger.InfoContext(ctx, "Database migrations applied")
			}

			go watchPool(watchCtx, logger.With(slog.String("component", poolComponentLabel)), sqlDB, poolCheckInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatching()

			return errors.WithStack(sqlDB.Close())
		},
	}
}

// watchPool logs whenever callers had to wait for a free connection.
func watchPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if level, attrs, waited := poolWaitReport(prev, cur); waited {
				logger.LogAttrs(ctx, level, "connection pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWaitReport compares two pool snapshots. It reports false when nobody
// waited in between, and warns once the added wait time reaches poolWaitWarnAfter.
func poolWaitReport(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return slog.LevelDebug, nil, false
	}

	waited := cur.WaitDuration - prev.WaitDuration
	attrs := []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	return level, attrs, true
}
