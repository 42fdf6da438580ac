package repository

import (
	"context"

	"github.com/osse101/HarvestCodex_Go/internal/domain"
)

// Catalog defines persistence for the mirrored item catalog and its sync state
type Catalog interface {
	GetAllCatalogItems(ctx context.Context) ([]domain.Item, error)
	InsertCatalogItem(ctx context.Context, item *domain.Item) error
	UpdateCatalogItem(ctx context.Context, item *domain.Item) error

	// GetSyncMetadata returns ErrSyncMetadataNotFound before the first sync
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error
}
