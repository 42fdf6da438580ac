package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "completion.changed")
const (
	// EventTypeCompletionChanged is published after a completion change is persisted
	EventTypeCompletionChanged = "completion.changed"

	// EventTypeCompletionRolledBack is published when an optimistic change is reverted
	EventTypeCompletionRolledBack = "completion.rolled_back"

	// EventTypeSessionStarted is published when a user's completion cache is loaded
	EventTypeSessionStarted = "session.started"

	// EventTypeSessionEnded is published when a user's completion cache is cleared
	EventTypeSessionEnded = "session.ended"
)
