package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/HarvestCodex_Go/internal/domain"
	"github.com/osse101/HarvestCodex_Go/internal/repository"
)

const catalogColumns = `item_id, name, name_pt, game, category, description, description_pt, source, value, hytale_id`

// GetAllCatalogItems returns the mirrored catalog ordered by id
func (s *Store) GetAllCatalogItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+catalogColumns+` FROM catalog_items ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCatalogItems, err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(
			&item.ID, &item.Name, &item.NamePt, &item.Game, &item.Category,
			&item.Description, &item.DescriptionPt, &item.Source, &item.Value, &item.HytaleID,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanCatalogItem, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCatalogItems, err)
	}
	return items, nil
}

// InsertCatalogItem adds a catalog row
func (s *Store) InsertCatalogItem(ctx context.Context, item *domain.Item) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO catalog_items (`+catalogColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		item.ID, item.Name, item.NamePt, string(item.Game), string(item.Category),
		item.Description, item.DescriptionPt, item.Source, item.Value, item.HytaleID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertCatalogItem, err)
	}
	return nil
}

// UpdateCatalogItem overwrites an existing catalog row
func (s *Store) UpdateCatalogItem(ctx context.Context, item *domain.Item) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE catalog_items
		SET name = $2, name_pt = $3, game = $4, category = $5, description = $6,
		    description_pt = $7, source = $8, value = $9, hytale_id = $10, updated_at = NOW()
		WHERE item_id = $1`,
		item.ID, item.Name, item.NamePt, string(item.Game), string(item.Category),
		item.Description, item.DescriptionPt, item.Source, item.Value, item.HytaleID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateCatalogItem, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %s", ErrMsgCatalogItemNotFound, item.ID)
	}
	return nil
}

// GetSyncMetadata returns repository.ErrSyncMetadataNotFound before the first sync
func (s *Store) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	var meta domain.SyncMetadata
	err := s.pool.QueryRow(ctx, `
		SELECT config_name, last_sync_time, file_hash, item_count
		FROM sync_metadata
		WHERE config_name = $1`, configName,
	).Scan(&meta.ConfigName, &meta.LastSyncTime, &meta.FileHash, &meta.ItemCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrSyncMetadataNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSyncMetadata, err)
	}
	return &meta, nil
}

// UpsertSyncMetadata records the latest sync
func (s *Store) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO sync_metadata (config_name, last_sync_time, file_hash, item_count)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (config_name) DO UPDATE
		SET last_sync_time = EXCLUDED.last_sync_time,
		    file_hash = EXCLUDED.file_hash,
		    item_count = EXCLUDED.item_count`,
		metadata.ConfigName, metadata.LastSyncTime, metadata.FileHash, metadata.ItemCount)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertSyncMeta, err)
	}
	return nil
}
