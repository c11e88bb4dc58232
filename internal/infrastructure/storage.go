// Package infrastructure selects and opens the configured storage backend.
package infrastructure

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/snapfeed/snapfeed-api/config"
	"github.com/snapfeed/snapfeed-api/internal/domain/repository"
	"github.com/snapfeed/snapfeed-api/internal/infrastructure/postgres"
	"github.com/snapfeed/snapfeed-api/internal/infrastructure/sqlite"
)

// OpenRepositories opens the backend named by cfg.DBDriver and returns its
// repositories plus a cleanup func to be called on shutdown. The sqlite
// backend creates its schema on open; postgres runs pending migrations.
func OpenRepositories(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*repository.Repositories, func(), error) {
	switch cfg.DBDriver {
	case "sqlite":
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		logger.WithField("path", cfg.SQLitePath).Info("sqlite store ready")
		return sqlite.NewRepositories(db), func() { _ = db.Close() }, nil

	case "postgres":
		if err := postgres.Migrate(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
			return nil, nil, fmt.Errorf("run migrations: %w", err)
		}
		pool, err := postgres.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}
		logger.WithField("db", cfg.DBName).Info("postgres store ready")
		return postgres.NewRepositories(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown DB_DRIVER %q (want sqlite or postgres)", cfg.DBDriver)
	}
}
