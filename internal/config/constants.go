package config

// ExpectedEnvSchemaVersion is the .env layout version the application expects
const ExpectedEnvSchemaVersion = "1.0"

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

// Validation limits
const (
	MinPort            = 1
	MaxPort            = 65535
	MinJWTSecretLength = 32
)

// Example values from .env.example that must not reach production
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleJWTSecret  = "generate_with_openssl_rand_hex_32"
)
