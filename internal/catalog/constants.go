package catalog

// Embedded file names
const (
	ItemsFile       = "data/items.json"
	ItemsSchemaFile = "data/items.schema.json"
	ConfigName      = "items.json"
)

// Error messages
const (
	ErrMsgReadCatalogFailed      = "failed to read catalog: %w"
	ErrMsgSchemaValidationFailed = "catalog schema validation failed: %w"
	ErrMsgParseCatalogFailed     = "failed to parse catalog: %w"
	ErrMsgEmptyCatalog           = "catalog has no items"
	ErrMsgGetSyncMetadataFailed  = "failed to read sync metadata: %w"
	ErrMsgGetStoredItemsFailed   = "failed to get stored catalog items: %w"
	ErrMsgInsertItemFailed       = "failed to insert item '%s': %w"
	ErrMsgUpdateItemFailed       = "failed to update item '%s': %w"
)

// Log messages
const (
	LogMsgCatalogLoaded        = "Item catalog loaded"
	LogMsgCatalogUnchanged     = "Catalog unchanged since last sync, skipping"
	LogMsgCatalogSynced        = "Catalog sync completed"
	LogMsgUpdateMetadataFailed = "Failed to update catalog sync metadata"
)
