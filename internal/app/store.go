package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/pet-health-journal/internal/adapter/localstore"
	"github.com/heartmarshall/pet-health-journal/internal/adapter/postgres"
	"github.com/heartmarshall/pet-health-journal/internal/adapter/sqlite"
	"github.com/heartmarshall/pet-health-journal/internal/config"
)

// OpenStore connects the configured backend, applies migrations and loads
// the local store. The returned func releases the backend.
func OpenStore(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (*localstore.Store, func(), error) {
	backend, closeFn, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	store, err := localstore.Open(ctx, backend, cfg.Namespace, logger)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("open local store: %w", err)
	}

	logger.Info("local store ready",
		slog.String("driver", cfg.Driver),
		slog.String("namespace", cfg.Namespace),
	)

	return store, closeFn, nil
}

func openBackend(ctx context.Context, cfg config.StoreConfig) (localstore.Backend, func(), error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewBlobStore(db), func() { db.Close() }, nil

	case config.DriverPostgres:
		if err := postgres.Migrate(ctx, cfg.Postgres.DSN); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		pool, err := postgres.NewPool(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewBlobStore(pool), pool.Close, nil

	default:
		return localstore.NewMemoryBackend(), func() {}, nil
	}
}
