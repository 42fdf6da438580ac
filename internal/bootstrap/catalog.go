package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/HarvestCodex_Go/internal/catalog"
	"github.com/osse101/HarvestCodex_Go/internal/logger"
	"github.com/osse101/HarvestCodex_Go/internal/repository"
)

// LoadCatalog loads and validates the bundled catalog, then mirrors it into
// the store when sync is enabled. Hash-based change detection makes repeat
// syncs of an unchanged catalog a no-op.
func LoadCatalog(ctx context.Context, repo repository.Catalog, sync bool) (*catalog.Catalog, error) {
	log := logger.FromContext(ctx)

	cat, err := catalog.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	log.Info(LogMsgCatalogLoaded, "items", cat.Len(), "hash", cat.Hash())

	if !sync {
		log.Info(LogMsgCatalogSyncOff)
		return cat, nil
	}

	log.Info(LogMsgSyncingCatalog)
	result, err := cat.SyncToDatabase(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	if !result.Unchanged {
		log.Info(LogMsgCatalogSynced,
			"inserted", result.ItemsInserted,
			"updated", result.ItemsUpdated,
			"skipped", result.ItemsSkipped)
	}

	return cat, nil
}
