package auth

import "time"

// Token transport
const (
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
	// QueryAccessToken carries the token for websocket upgrades, where browsers cannot set headers
	QueryAccessToken = "access_token"
)

// SigningMethod is the only algorithm accepted for access tokens
const SigningMethod = "HS256"

// DefaultLeeway absorbs clock skew between the auth provider and this service
const DefaultLeeway = 30 * time.Second

// Error messages
const (
	ErrMsgSecretRequired  = "jwt secret is required"
	ErrMsgMissingSubject  = "token has no subject"
	ErrMsgInvalidSubject  = "token subject is not a valid user id"
	ErrMsgParseToken      = "failed to parse token"
	ErrMsgSignToken       = "failed to sign token"
	ErrMsgMalformedHeader = "malformed authorization header"
)

// Log messages
const (
	LogMsgTokenRejected = "Access token rejected"
)
