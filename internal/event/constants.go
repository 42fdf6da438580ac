package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// LogMsgHandlerErrorFormat wraps the errors collected from a single publish
const LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
