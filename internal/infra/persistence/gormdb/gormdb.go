// Package gormdb contains the concrete implementation of the persistence layer using GORM.
// PostgreSQL is the production store; a SQLite file is the local fallback.
package gormdb

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"holocron/config"
	"holocron/internal/domain/lifecycle"
	"holocron/internal/errors"

	"github.com/glebarez/sqlite"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Driver names reported by Open.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured store and registers its lifecycle hooks.
func New(params Params) (*gorm.DB, error) {
	db, driver, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping %s", driver)
			}

			if params.Config.Database.AutoMigrate {
				if err := Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
			}

			params.Logger.Info("Database ready", slog.String("driver", driver))

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

// Open builds a *gorm.DB without lifecycle hooks. The CLI uses it directly for
// one-shot commands. The second return value names the selected driver.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, string, error) {
	driver := DriverSQLite
	if cfg.Database.URL != "" || hasPostgresBlock(cfg) {
		driver = DriverPostgres
	}

	gormCfg := &gorm.Config{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(logger, cfg, driver),
	}

	var (
		db  *gorm.DB
		err error
	)

	switch {
	case cfg.Database.URL != "":
		db, err = gorm.Open(postgres.Open(cfg.Database.URL), gormCfg)
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to open PostgreSQL from DATABASE_URL")
		}

		if err := registerReplicas(db, cfg.Database.ReplicaURLs); err != nil {
			return nil, "", err
		}
	case hasPostgresBlock(cfg):
		db, err = pgLib.New(cfg.Postgres)
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to create PostgreSQL client")
		}
		db.Config.TranslateError = true
		db = db.Session(&gorm.Session{
			SkipDefaultTransaction: true,
			Logger:                 gormCfg.Logger,
		})
	default:
		db, err = gorm.Open(sqlite.Open(sqliteDSN(cfg.Database.SQLitePath)), gormCfg)
		if err != nil {
			return nil, "", errors.Wrapf(err, "failed to open SQLite file %s", cfg.Database.SQLitePath)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to get sql.DB")
	}
	if cfg.Database.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	if cfg.Database.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}

	return db, driver, nil
}

// hasPostgresBlock reports whether the structured postgres block names a
// server. A block with only credentials does not select postgres.
func hasPostgresBlock(cfg *config.Config) bool {
	return cfg.Postgres != nil && cfg.Postgres.Master.Host != ""
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off by default.
func sqliteDSN(path string) string {
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// registerReplicas routes plain reads to the replicas. Writes and everything
// inside an explicit transaction stay on the primary.
func registerReplicas(db *gorm.DB, replicaURLs []string) error {
	if len(replicaURLs) == 0 {
		return nil
	}

	replicas := make([]gorm.Dialector, 0, len(replicaURLs))
	for _, url := range replicaURLs {
		replicas = append(replicas, postgres.Open(url))
	}

	if err := db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: replicas,
		Policy:   dbresolver.RandomPolicy{},
	})); err != nil {
		return errors.Wrap(err, "failed to register read replicas")
	}

	return nil
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
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Database pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Database pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
