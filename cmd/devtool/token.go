package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/HarvestCodex_Go/internal/auth"
)

const defaultTokenTTL = time.Hour

type TokenCommand struct{}

func (c *TokenCommand) Name() string {
	return "token"
}

func (c *TokenCommand) Description() string {
	return "Issue a local access token for manual API testing [user-id] [ttl]"
}

func (c *TokenCommand) Run(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}

	userID := uuid.NewString()
	if len(args) > 0 {
		userID = args[0]
	}
	ttl := defaultTokenTTL
	if len(args) > 1 {
		if ttl, err = time.ParseDuration(args[1]); err != nil {
			return fmt.Errorf("invalid ttl: %w", err)
		}
	}

	verifier, err := auth.NewVerifier(auth.VerifierConfig{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
	})
	if err != nil {
		return err
	}

	token, err := verifier.Issue(userID, ttl)
	if err != nil {
		return err
	}

	PrintInfo("user %s, expires in %v", userID, ttl)
	fmt.Println(token)
	return nil
}
