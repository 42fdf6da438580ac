package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/HarvestCodex_Go/internal/config"
	"github.com/osse101/HarvestCodex_Go/internal/database"
	"github.com/osse101/HarvestCodex_Go/internal/database/postgres"
	"github.com/osse101/HarvestCodex_Go/internal/database/sqlite"
	"github.com/osse101/HarvestCodex_Go/internal/logger"
	"github.com/osse101/HarvestCodex_Go/internal/repository"
)

// OpenStore opens the completion store selected by STORE_DRIVER and brings
// its schema up to date
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	log := logger.FromContext(ctx)

	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(),
			database.PoolOptions{MaxConns: cfg.DBMaxConns})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}

		if cfg.RunMigrations {
			if _, err := database.MigratePostgres(ctx, pool); err != nil {
				pool.Close()
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDB, err)
			}
		} else {
			log.Info(LogMsgMigrationsSkipped)
		}

		log.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver, "host", cfg.DBHost, "database", cfg.DBName)
		return postgres.NewStore(pool), nil

	case config.StoreDriverSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, DirPermission); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
			}
		}

		// The sqlite store always migrates on open
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}

		log.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver, "path", cfg.SQLitePath)
		return store, nil
	}

	return nil, fmt.Errorf(ErrMsgUnsupportedDriverFmt, cfg.StoreDriver)
}
