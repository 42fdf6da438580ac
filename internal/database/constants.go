package database

import "time"

// Connection pool defaults
const (
	DefaultMinConnections  = 2
	DefaultMaxConnIdleTime = 5 * time.Minute
	DefaultMaxConnLifetime = time.Hour
)

// Error messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToOpenMigrations  = "failed to open migrations"
	ErrMsgFailedToApplyMigrations = "failed to apply migrations"
	ErrMsgFailedToReadStatus      = "failed to read migration status"
)

// Log messages
const (
	LogMsgPoolReady          = "Completion store pool ready"
	LogMsgMigrationApplied   = "Applied migration"
	LogMsgMigrationsUpToDate = "Database schema is up to date"
)
