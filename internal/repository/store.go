package repository

import (
	"context"
	"errors"
)

// ErrSyncMetadataNotFound is returned when a config has never been synced
var ErrSyncMetadataNotFound = errors.New("sync metadata not found")

// Store is a complete persistence backend
type Store interface {
	Completion
	Catalog

	Ping(ctx context.Context) error
	Close()
}
