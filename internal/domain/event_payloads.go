package domain

// CompletionChangedPayload is the payload for completion.changed and
// completion.rolled_back events. Completed is the membership after the event.
type CompletionChangedPayload struct {
	UserID    string           `json:"user_id"`
	ItemID    string           `json:"item_id"`
	Action    CompletionAction `json:"action"`
	Completed bool             `json:"completed"`
	Timestamp int64            `json:"timestamp"`
}

// SessionPayload is the payload for session.started and session.ended events
type SessionPayload struct {
	UserID         string `json:"user_id"`
	CompletedCount int    `json:"completed_count"`
	Timestamp      int64  `json:"timestamp"`
}
