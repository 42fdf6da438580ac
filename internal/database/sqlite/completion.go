package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/HarvestCodex_Go/internal/domain"
)

// ListCompletedItemIDs returns every item id the user has completed
func (s *Store) ListCompletedItemIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT item_id FROM user_items WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCompletions, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCompletions, err)
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
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, item_id, created_at
		FROM user_items
		WHERE user_id = ?
		ORDER BY created_at DESC, item_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCompletions, err)
	}
	defer rows.Close()

	var completions []domain.UserItemCompletion
	for rows.Next() {
		var c domain.UserItemCompletion
		var createdAt int64
		if err := rows.Scan(&c.UserID, &c.ItemID, &createdAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCompletions, err)
		}
		c.CreatedAt = fromMillis(createdAt)
		completions = append(completions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCompletions, err)
	}
	return completions, nil
}

// InsertCompletion records the pair; an existing row is left untouched
func (s *Store) InsertCompletion(ctx context.Context, userID, itemID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_items (user_id, item_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id, item_id) DO NOTHING`,
		userID, itemID, toMillis(time.Now()))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertCompletion, err)
	}
	return nil
}

// DeleteCompletion removes exactly the (user, item) row
func (s *Store) DeleteCompletion(ctx context.Context, userID, itemID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM user_items WHERE user_id = ? AND item_id = ?`, userID, itemID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteCompletion, err)
	}
	return nil
}
