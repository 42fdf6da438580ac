package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/HarvestCodex_Go/internal/domain"
	"github.com/osse101/HarvestCodex_Go/internal/repository"
)

// GetAllCatalogItems returns the mirrored catalog ordered by id
func (s *Store) GetAllCatalogItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT item_id, name, name_pt, game, category, description, description_pt, source, value, hytale_id
		FROM catalog_items
		ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCatalogItems, err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var (
			item     domain.Item
			game     string
			category string
			value    sql.NullInt64
		)
		if err := rows.Scan(
			&item.ID, &item.Name, &item.NamePt, &game, &category,
			&item.Description, &item.DescriptionPt, &item.Source, &value, &item.HytaleID,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCatalogItems, err)
		}
		item.Game = domain.Game(game)
		item.Category = domain.Category(category)
		if value.Valid {
			v := int(value.Int64)
			item.Value = &v
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
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO catalog_items (
		  item_id, name, name_pt, game, category, description, description_pt, source, value, hytale_id, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.NamePt, string(item.Game), string(item.Category),
		item.Description, item.DescriptionPt, item.Source, nullableInt(item.Value), item.HytaleID,
		toMillis(time.Now()))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertCatalogItem, err)
	}
	return nil
}

// UpdateCatalogItem overwrites an existing catalog row
func (s *Store) UpdateCatalogItem(ctx context.Context, item *domain.Item) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE catalog_items
		SET name = ?, name_pt = ?, game = ?, category = ?, description = ?,
		    description_pt = ?, source = ?, value = ?, hytale_id = ?, updated_at = ?
		WHERE item_id = ?`,
		item.Name, item.NamePt, string(item.Game), string(item.Category), item.Description,
		item.DescriptionPt, item.Source, nullableInt(item.Value), item.HytaleID, toMillis(time.Now()),
		item.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateCatalogItem, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %s", ErrMsgCatalogItemNotFound, item.ID)
	}
	return nil
}

// GetSyncMetadata returns repository.ErrSyncMetadataNotFound before the first sync
func (s *Store) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	var (
		meta     domain.SyncMetadata
		lastSync int64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT config_name, last_sync_time, file_hash, item_count
		FROM sync_metadata
		WHERE config_name = ?`, configName,
	).Scan(&meta.ConfigName, &lastSync, &meta.FileHash, &meta.ItemCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrSyncMetadataNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSyncMetadata, err)
	}
	meta.LastSyncTime = fromMillis(lastSync)
	return &meta, nil
}

// UpsertSyncMetadata records the latest sync
func (s *Store) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sync_metadata (config_name, last_sync_time, file_hash, item_count)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (config_name) DO UPDATE
		SET last_sync_time = excluded.last_sync_time,
		    file_hash = excluded.file_hash,
		    item_count = excluded.item_count`,
		metadata.ConfigName, toMillis(metadata.LastSyncTime), metadata.FileHash, metadata.ItemCount)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertSyncMeta, err)
	}
	return nil
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
