package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"rentauth/config"
	"rentauth/internal/domain/lifecycle"
	"rentauth/internal/errors"
	"rentauth/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// accountIndexes back the case-insensitive location listing and the expired
// token sweep; struct tags cannot express either.
var accountIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_users_location_lower ON users (LOWER(location))`,
	`CREATE INDEX IF NOT EXISTS idx_users_pending_token_expiry ON users (token_expires_at) WHERE verification_token IS NOT NULL`,
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the account store. Writes go to the primary; dbresolver routes
// reporting reads to any configured replicas.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Unique violations on email come back as gorm.ErrDuplicatedKey.
	db.Config.TranslateError = true
	db = db.Session(&gorm.Session{
		// Multi-step account changes use txManager.Execute explicitly.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			// Outside debug the schema is owned by migrations.
			if params.Config.Env.Debug {
				if err := prepareAccountSchema(db.WithContext(ctx)); err != nil {
					return err
				}
			}

			params.Logger.Info("Account store connected",
				slog.String("database", params.Config.Postgres.Database),
				slog.Int("replicas", len(params.Config.Postgres.Replicas)),
			)

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func prepareAccountSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.AccountModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate users table")
	}

	for _, stmt := range accountIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return errors.Wrap(err, "failed to create users index")
		}
	}

	return nil
}

// poolWait is the pool contention observed between two samples.
type poolWait struct {
	count    int64
	duration time.Duration
	stats    sql.DBStats
}

func newPoolWait(prev, cur sql.DBStats) (poolWait, bool) {
	w := poolWait{
		count:    cur.WaitCount - prev.WaitCount,
		duration: cur.WaitDuration - prev.WaitDuration,
		stats:    cur,
	}

	return w, w.count > 0
}

func (w poolWait) level() slog.Level {
	if w.duration >= dbPoolWarnDurationThreshold {
		return slog.LevelWarn
	}

	return slog.LevelDebug
}

func (w poolWait) attrs() []slog.Attr {
	return []slog.Attr{
		slog.Int64("waitCountDelta", w.count),
		slog.Duration("waitDurationDelta", w.duration),
		slog.Duration("avgWait", w.duration/time.Duration(w.count)),
		slog.Int("maxOpenConns", w.stats.MaxOpenConnections),
		slog.Int("openConns", w.stats.OpenConnections),
		slog.Int("inUseConns", w.stats.InUse),
		slog.Int("idleConns", w.stats.Idle),
	}
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if wait, ok := newPoolWait(prev, cur); ok {
				logger.LogAttrs(ctx, wait.level(), "Account store pool wait", wait.attrs()...)
			}
			prev = cur
		}
	}
}
