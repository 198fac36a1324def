package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all server configuration, parsed from the environment
type Config struct {
	Host     string     `env:"HOST" envDefault:""`
	Port     int        `env:"PORT" envDefault:"8080"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	// StorageType selects the persistence backend: file, memory, redis
	// or postgres
	StorageType string `env:"STORAGE_TYPE" envDefault:"file"`
	// SessionFile is the JSON session document path for file storage
	SessionFile string `env:"SESSION_FILE" envDefault:"data/session_data.json"`
	RedisURL    string `env:"REDIS_URL" envDefault:""`
	PostgresURL string `env:"POSTGRES_URL" envDefault:""`

	// CatalogFile optionally overrides the built-in place catalog
	CatalogFile string `env:"CATALOG_FILE" envDefault:""`

	XPPerLevel int `env:"XP_PER_LEVEL" envDefault:"200"`

	// AdminPassword is the credential for the seeded admin account
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin"`
}

// Load reads configuration from a .env file (if present) and the
// environment
func Load() (*Config, error) {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
