package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingApp         = "Starting HarvestCodex"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Store Messages
// =============================================================================

const (
	LogMsgStoreOpened          = "Completion store opened"
	LogMsgMigrationsSkipped    = "Migrations disabled, skipping"
	ErrMsgFailedConnectDB      = "failed to connect to database"
	ErrMsgFailedMigrateDB      = "failed to migrate database"
	ErrMsgFailedOpenSQLite     = "failed to open sqlite store"
	ErrMsgUnsupportedDriverFmt = "unsupported store driver %q"
)

// =============================================================================
// Catalog Messages
// =============================================================================

const (
	LogMsgCatalogLoaded     = "Catalog loaded"
	LogMsgSyncingCatalog    = "Syncing catalog into the store..."
	LogMsgCatalogSynced     = "Catalog synced successfully"
	LogMsgCatalogSyncOff    = "Catalog sync disabled, skipping"
	ErrMsgFailedLoadCatalog = "failed to load catalog"
	ErrMsgFailedSyncCatalog = "failed to sync catalog to database"
)

// =============================================================================
// Event System Messages
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgLiveFeedRegistered         = "Live feed registered"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingStore         = "Closing completion store..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
