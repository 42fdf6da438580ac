package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidQuery          = "Invalid query parameters"
	ErrMsgInvalidRequestFormat  = "Invalid request format"

	ErrMsgItemIDRequired = "Item id is required"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgSignInRequired      = "Sign in to track completed items"
	ErrMsgSessionExpired      = "Your session has expired. Please sign in again."
	ErrMsgUpdateInProgressErr = "That item is already being updated"
	ErrMsgFetchFailedError    = "Could not load your completed items. Please try again."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
)

// Success messages
const (
	MsgSignedOut = "Signed out"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgStoreFailed    = "completion store connection failed"
)

// Log messages
const (
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteFailed         = "Failed to write response buffer"
	LogMsgDecodeFailed        = "Failed to decode request"
	LogMsgRequestDecoded      = "Request decoded"
	LogMsgServiceError        = "Service call failed"
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgSessionLoadFailed   = "Serving items without completion state"
	LogMsgServingStaleSet     = "Store read failed, serving cached completion set"
	LogMsgRecentLoadFailed    = "Failed to load recent completions"
	LogMsgToggleRequested     = "Toggle requested"
	LogMsgBatchRequested      = "Batch update requested"
	LogMsgBatchPartialFailure = "Batch update partially failed"
)
