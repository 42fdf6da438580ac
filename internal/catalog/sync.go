package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/HarvestCodex_Go/internal/domain"
	"github.com/osse101/HarvestCodex_Go/internal/logger"
	"github.com/osse101/HarvestCodex_Go/internal/repository"
)

// SyncResult contains the result of mirroring the catalog into the store
type SyncResult struct {
	ItemsInserted int
	ItemsUpdated  int
	ItemsSkipped  int
	Unchanged     bool
}

// SyncToDatabase mirrors the catalog into the store idempotently. Items are
// never deleted so completion rows for retired items stay readable.
func (c *Catalog) SyncToDatabase(ctx context.Context, repo repository.Catalog) (*SyncResult, error) {
	log := logger.FromContext(ctx)
	hash := c.Hash()

	meta, err := repo.GetSyncMetadata(ctx, ConfigName)
	switch {
	case err == nil && meta.FileHash == hash:
		log.Info(LogMsgCatalogUnchanged, "hash", hash)
		return &SyncResult{Unchanged: true}, nil
	case err != nil && !errors.Is(err, repository.ErrSyncMetadataNotFound):
		return nil, fmt.Errorf(ErrMsgGetSyncMetadataFailed, err)
	}

	stored, err := repo.GetAllCatalogItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetStoredItemsFailed, err)
	}
	existing := make(map[string]domain.Item, len(stored))
	for _, item := range stored {
		existing[item.ID] = item
	}

	result := &SyncResult{}
	for i := range c.items {
		item := c.items[i]
		prev, ok := existing[item.ID]
		switch {
		case !ok:
			if err := repo.InsertCatalogItem(ctx, &item); err != nil {
				return nil, fmt.Errorf(ErrMsgInsertItemFailed, item.ID, err)
			}
			result.ItemsInserted++
		case needsUpdate(prev, item):
			if err := repo.UpdateCatalogItem(ctx, &item); err != nil {
				return nil, fmt.Errorf(ErrMsgUpdateItemFailed, item.ID, err)
			}
			result.ItemsUpdated++
		default:
			result.ItemsSkipped++
		}
	}

	if err := repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   ConfigName,
		LastSyncTime: time.Now(),
		FileHash:     hash,
		ItemCount:    len(c.items),
	}); err != nil {
		log.Warn(LogMsgUpdateMetadataFailed, "error", err)
	}

	log.Info(LogMsgCatalogSynced,
		"inserted", result.ItemsInserted,
		"updated", result.ItemsUpdated,
		"skipped", result.ItemsSkipped)

	return result, nil
}

// Hash fingerprints the catalog contents
func (c *Catalog) Hash() string {
	data := c.raw
	if data == nil {
		data, _ = json.Marshal(c.items)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func needsUpdate(stored, item domain.Item) bool {
	return stored.Name != item.Name ||
		stored.NamePt != item.NamePt ||
		stored.Game != item.Game ||
		stored.Category != item.Category ||
		stored.Description != item.Description ||
		stored.DescriptionPt != item.DescriptionPt ||
		stored.Source != item.Source ||
		stored.HytaleID != item.HytaleID ||
		!intPtrEqual(stored.Value, item.Value)
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
