package sqlite

// Error messages
const (
	ErrMsgPathRequired              = "sqlite path is required"
	ErrMsgFailedToOpen              = "open sqlite db"
	ErrMsgFailedToPing              = "ping sqlite db"
	ErrMsgFailedToListCompletions   = "failed to list completions"
	ErrMsgFailedToInsertCompletion  = "failed to insert completion"
	ErrMsgFailedToDeleteCompletion  = "failed to delete completion"
	ErrMsgFailedToGetCatalogItems   = "failed to get catalog items"
	ErrMsgFailedToInsertCatalogItem = "failed to insert catalog item"
	ErrMsgFailedToUpdateCatalogItem = "failed to update catalog item"
	ErrMsgCatalogItemNotFound       = "catalog item not found"
	ErrMsgFailedToGetSyncMetadata   = "failed to get sync metadata"
	ErrMsgFailedToUpsertSyncMeta    = "failed to upsert sync metadata"
)
