package repository

import (
	"context"

	"github.com/osse101/HarvestCodex_Go/internal/domain"
)

// Completion defines persistence for per-user item completion rows.
// Membership is binary: a (user, item) row exists or it does not.
type Completion interface {
	// ListCompletedItemIDs returns every item the user has completed
	ListCompletedItemIDs(ctx context.Context, userID string) ([]string, error)
	// ListCompletions returns the full rows, newest first
	ListCompletions(ctx context.Context, userID string) ([]domain.UserItemCompletion, error)
	// InsertCompletion adds the row. Inserting an existing pair is not an error.
	InsertCompletion(ctx context.Context, userID, itemID string) error
	// DeleteCompletion removes the row matching the exact pair. Deleting a missing pair is not an error.
	DeleteCompletion(ctx context.Context, userID, itemID string) error
}
