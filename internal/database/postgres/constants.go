package postgres

// Error messages - completion operations
const (
	ErrMsgFailedToListCompletions  = "failed to list completions"
	ErrMsgFailedToScanCompletion   = "failed to scan completion row"
	ErrMsgFailedToInsertCompletion = "failed to insert completion"
	ErrMsgFailedToDeleteCompletion = "failed to delete completion"
)

// Error messages - catalog operations
const (
	ErrMsgFailedToGetCatalogItems   = "failed to get catalog items"
	ErrMsgFailedToScanCatalogItem   = "failed to scan catalog item"
	ErrMsgFailedToInsertCatalogItem = "failed to insert catalog item"
	ErrMsgFailedToUpdateCatalogItem = "failed to update catalog item"
	ErrMsgCatalogItemNotFound       = "catalog item not found"
	ErrMsgFailedToGetSyncMetadata   = "failed to get sync metadata"
	ErrMsgFailedToUpsertSyncMeta    = "failed to upsert sync metadata"
)
