package completion

import "time"

// Cache defaults used when the caller passes zero values
const (
	DefaultSessionCacheSize = 1000
	DefaultSessionTTL       = 24 * time.Hour
	DefaultStoreTimeout     = 5 * time.Second
)

// Log messages
const (
	LogMsgFetchFailed       = "Failed to fetch completed items, keeping cached set"
	LogMsgSessionLoaded     = "Completion session loaded"
	LogMsgSessionCleared    = "Completion session cleared"
	LogMsgSessionEvicted    = "Completion session evicted"
	LogMsgUpdateRolledBack  = "Completion update failed, rolled back"
	LogMsgCompletionApplied = "Completion updated"
	LogMsgBatchItemSkipped  = "Batch item skipped, update already in progress"
	LogMsgPublishFailed     = "Failed to publish completion event"
)
