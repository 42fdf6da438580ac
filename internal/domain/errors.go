package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound     = "item not found"
	ErrMsgDuplicateItemID  = "duplicate item id"
	ErrMsgInvalidGame      = "invalid game"
	ErrMsgInvalidCategory  = "invalid category"
	ErrMsgInvalidItemValue = "item value must be non-negative"

	// Completion errors
	ErrMsgCompletionUpdateFailed = "Failed to update item status. Please try again."
	ErrMsgCompletionFetchFailed  = "failed to fetch completed items"
	ErrMsgUpdateInProgress       = "an update for this item is already in progress"

	// Auth errors
	ErrMsgUnauthenticated = "authentication required"
	ErrMsgInvalidToken    = "invalid or expired token"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"
	ErrMsgStoreUnavailable  = "completion store unavailable"

	// Input errors
	ErrMsgInvalidInput     = "invalid input"
	ErrMsgInvalidSeason    = "invalid season"
	ErrMsgInvalidBiome     = "invalid biome"
	ErrMsgInvalidProcessor = "invalid processor"
	ErrMsgInvalidQuality   = "invalid quality tier"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Item errors
	ErrItemNotFound     = errors.New(ErrMsgItemNotFound)
	ErrDuplicateItemID  = errors.New(ErrMsgDuplicateItemID)
	ErrInvalidGame      = errors.New(ErrMsgInvalidGame)
	ErrInvalidCategory  = errors.New(ErrMsgInvalidCategory)
	ErrInvalidItemValue = errors.New(ErrMsgInvalidItemValue)

	// Completion errors
	ErrCompletionUpdateFailed = errors.New(ErrMsgCompletionUpdateFailed)
	ErrCompletionFetchFailed  = errors.New(ErrMsgCompletionFetchFailed)
	ErrUpdateInProgress       = errors.New(ErrMsgUpdateInProgress)

	// Auth errors
	ErrUnauthenticated = errors.New(ErrMsgUnauthenticated)
	ErrInvalidToken    = errors.New(ErrMsgInvalidToken)

	// Store errors
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)

	// Validation errors
	ErrInvalidInput     = errors.New(ErrMsgInvalidInput)
	ErrInvalidSeason    = errors.New(ErrMsgInvalidSeason)
	ErrInvalidBiome     = errors.New(ErrMsgInvalidBiome)
	ErrInvalidProcessor = errors.New(ErrMsgInvalidProcessor)
	ErrInvalidQuality   = errors.New(ErrMsgInvalidQuality)
)
