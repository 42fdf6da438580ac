package domain

import "time"

// UserItemCompletion records that a user has completed a catalog item.
// A row exists only while the item is marked complete.
type UserItemCompletion struct {
	UserID    string    `json:"user_id" db:"user_id"`
	ItemID    string    `json:"item_id" db:"item_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CompletionAction is the store operation applied for a completion change
type CompletionAction string

const (
	CompletionActionInsert CompletionAction = "insert"
	CompletionActionDelete CompletionAction = "delete"
)

// CompletionProgress summarizes how much of the catalog a user has completed
type CompletionProgress struct {
	Completed  int                    `json:"completed"`
	Total      int                    `json:"total"`
	Percent    float64                `json:"percent"`
	ByCategory map[Category]CountPair `json:"by_category"`
	ByGame     map[Game]CountPair     `json:"by_game"`
}

// CountPair is a completed/total pair
type CountPair struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}
