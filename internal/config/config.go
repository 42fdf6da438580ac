package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	EnvSchemaVersion string `env:"ENV_SCHEMA_VERSION" envDefault:"1.0"`

	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	Version     string `env:"VERSION" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"harvest-codex"`
	LogDir      string `env:"LOG_DIR"`

	// Persistence
	StoreDriver   string `env:"STORE_DRIVER" envDefault:"postgres"`
	DBUser        string `env:"DB_USER" envDefault:"postgres"`
	DBPassword    string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost        string `env:"DB_HOST" envDefault:"localhost"`
	DBPort        string `env:"DB_PORT" envDefault:"5432"`
	DBName        string `env:"DB_NAME" envDefault:"harvestcodex"`
	DBMaxConns    int32  `env:"DB_MAX_CONNS" envDefault:"10"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"data/harvestcodex.db"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"true"`
	SyncCatalog   bool   `env:"SYNC_CATALOG" envDefault:"true"`

	// Authentication (Supabase-style HS256 access tokens)
	JWTSecret   string `env:"JWT_SECRET"`
	JWTIssuer   string `env:"JWT_ISSUER"`
	JWTAudience string `env:"JWT_AUDIENCE" envDefault:"authenticated"`

	// Completion session cache
	SessionCacheSize int           `env:"SESSION_CACHE_SIZE" envDefault:"1000"`
	SessionTTL       time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	StoreTimeout     time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`

	// HTTP
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Load loads the configuration from the environment, reading .env first when present
func Load() (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse reads .env and the environment without cross-field validation.
// Tooling that needs only part of the config uses it directly.
func Parse() (*Config, error) {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsDevelopment reports whether the app runs in a local development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
