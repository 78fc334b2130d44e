package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/ps-health/patient-service/store"
)

const driverName = "postgres"

// NewDatabase opens the connection pool and applies the schema migrations when the
// application starts.
func NewDatabase(cfg *Config, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("unable to open postgres connection: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.PingContext(ctx); err != nil {
				return fmt.Errorf("unable to connect to postgres: %w", err)
			}
			logger.Infow("applying schema migrations", "count", len(migrationFiles()))
			return Apply(ctx, db.DB)
		},
		OnStop: func(ctx context.Context) error {
			return db.Close()
		},
	})

	return db, nil
}

func NewPinger(db *sqlx.DB) store.Pinger {
	return store.PingerFunc(db.PingContext)
}
