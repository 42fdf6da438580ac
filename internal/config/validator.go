package config

import (
	"fmt"
	"strings"
)

// Validate checks cross-field rules the env tags cannot express
func (c *Config) Validate() error {
	if c.EnvSchemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated",
			ExpectedEnvSchemaVersion, c.EnvSchemaVersion)
	}

	var problems []string

	if c.Port < MinPort || c.Port > MaxPort {
		problems = append(problems, fmt.Sprintf("PORT must be between %d and %d", MinPort, MaxPort))
	}

	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DBHost == "" || c.DBName == "" {
			problems = append(problems, "DB_HOST and DB_NAME are required for the postgres store")
		}
		if c.DBMaxConns < 1 {
			problems = append(problems, "DB_MAX_CONNS must be at least 1")
		}
	case StoreDriverSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			problems = append(problems, "SQLITE_PATH is required for the sqlite store")
		}
	default:
		problems = append(problems, fmt.Sprintf("STORE_DRIVER must be %q or %q, got %q", StoreDriverPostgres, StoreDriverSQLite, c.StoreDriver))
	}

	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET environment variable must be set for security")
	}
	if c.SessionCacheSize < 1 {
		problems = append(problems, "SESSION_CACHE_SIZE must be at least 1")
	}
	if c.SessionTTL <= 0 {
		problems = append(problems, "SESSION_TTL must be positive")
	}
	if c.StoreTimeout <= 0 {
		problems = append(problems, "STORE_TIMEOUT must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Warnings returns non-fatal issues such as example values left in place
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.JWTSecret == ExampleJWTSecret {
		warnings = append(warnings, "JWT_SECRET appears to be using the example value - copy the secret from your auth provider")
	} else if len(c.JWTSecret) < MinJWTSecretLength {
		warnings = append(warnings, fmt.Sprintf("JWT_SECRET is shorter than %d bytes", MinJWTSecretLength))
	}
	if !c.IsDevelopment() && len(c.AllowedOrigins) == 0 {
		warnings = append(warnings, "ALLOWED_ORIGINS is empty - live feed connections will only be accepted from the same host")
	}

	return warnings
}
