package postgres

import (
	"context"
	"fmt"

	"github.com/osse101/HarvestCodex_Go/internal/domain"
)

// ListCompletedItemIDs returns every item id the user has completed
func (s *Store) ListCompletedItemIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT item_id FROM user_items WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCompletions, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanCompletion, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCompletions, err)
	}
	return ids, nil
}

// ListCompletions returns the user's completion rows, newest first
func (s *Store) ListCompletions(ctx context.Context, userID string) ([]domain.UserItemCompletion, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT user_id, item_id, created_at
		FROM user_items
		WHERE user_id = $1
		ORDER BY created_at DESC, item_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCompletions, err)
	}
	defer rows.Close()

	var completions []domain.UserItemCompletion
	for rows.Next() {
		var c domain.UserItemCompletion
		if err := rows.Scan(&c.UserID, &c.ItemID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanCompletion, err)
		}
		completions = append(completions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCompletions, err)
	}
	return completions, nil
}

// InsertCompletion records the pair; an existing row is left untouched
func (s *Store) InsertCompletion(ctx context.Context, userID, itemID string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO user_items (user_id, item_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, item_id) DO NOTHING`, userID, itemID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertCompletion, err)
	}
	return nil
}

// DeleteCompletion removes exactly the (user, item) row
func (s *Store) DeleteCompletion(ctx context.Context, userID, itemID string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM user_items WHERE user_id = $1 AND item_id = $2`, userID, itemID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteCompletion, err)
	}
	return nil
}
