package livefeed

import "time"

// Connection tuning
const (
	writeWait      = 5 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	clientQueue    = 16
	bufferSize     = 4 * 1024
)

// MessageTypeHello is sent once after the upgrade
const MessageTypeHello = "hello"

// AllowAnyOrigin in the allowed origins list disables the origin check
const AllowAnyOrigin = "*"

// Log messages
const (
	LogMsgClientConnected    = "Live feed client connected"
	LogMsgClientDisconnected = "Live feed client disconnected"
	LogMsgUpgradeFailed      = "Live feed upgrade failed"
	LogMsgClientLagging      = "Live feed client lagging, message dropped"
	LogMsgPayloadInvalid     = "Live feed ignored event with invalid payload"
)

// Error messages
const (
	ErrMsgSignInRequired = "sign in to follow completion updates"
)
