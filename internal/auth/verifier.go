package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/osse101/HarvestCodex_Go/internal/domain"
)

// Claims are the access token claims issued by the auth provider
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// VerifierConfig configures token verification. Empty Issuer or Audience
// disables that check.
type VerifierConfig struct {
	Secret   string
	Issuer   string
	Audience string
	Leeway   time.Duration
	Now      func() time.Time
}

// Verifier validates HS256 access tokens
type Verifier struct {
	secret []byte
	parser *jwt.Parser
	cfg    VerifierConfig
}

// NewVerifier builds a verifier for the given shared secret
func NewVerifier(cfg VerifierConfig) (*Verifier, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, errors.New(ErrMsgSecretRequired)
	}
	if cfg.Leeway == 0 {
		cfg.Leeway = DefaultLeeway
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{SigningMethod}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(cfg.Leeway),
		jwt.WithTimeFunc(cfg.Now),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &Verifier{
		secret: []byte(cfg.Secret),
		parser: jwt.NewParser(opts...),
		cfg:    cfg,
	}, nil
}

// Verify parses the token and returns the user it identifies.
// Every failure wraps domain.ErrInvalidToken.
func (v *Verifier) Verify(raw string) (User, error) {
	var claims Claims
	_, err := v.parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return User{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidToken, ErrMsgParseToken, err)
	}

	if claims.Subject == "" {
		return User{}, fmt.Errorf("%w: %s", domain.ErrInvalidToken, ErrMsgMissingSubject)
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return User{}, fmt.Errorf("%w: %s", domain.ErrInvalidToken, ErrMsgInvalidSubject)
	}

	return User{ID: id.String(), Email: claims.Email, Role: claims.Role}, nil
}

// Issue signs a token for userID valid for ttl. Used by tooling and tests;
// production tokens come from the auth provider.
func (v *Verifier) Issue(userID string, ttl time.Duration) (string, error) {
	now := v.cfg.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    v.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: "authenticated",
	}
	if v.cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{v.cfg.Audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgSignToken, err)
	}
	return signed, nil
}
