package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for mimic-engine.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values. Secrets (the database
// password) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8480"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Seed for the shared random source. 0 means time-based seeding; any other
	// value makes generation reproducible run to run.
	Seed int64 `yaml:"seed" env:"SEED" env-default:"0"`

	// Generator limits and defaults
	Generator GeneratorConfig `yaml:"generator"`

	// Database configuration (PostgreSQL, used by the seed command only)
	Database DatabaseConfig `yaml:"database"`
}

// GeneratorConfig bounds what a single request or CLI invocation may produce.
type GeneratorConfig struct {
	// DefaultCount is used when a request does not specify a record count.
	DefaultCount int `yaml:"default_count" env:"GENERATOR_DEFAULT_COUNT" env-default:"10"`
	// MaxRecords caps the count accepted by the HTTP surface.
	MaxRecords int `yaml:"max_records" env:"GENERATOR_MAX_RECORDS" env-default:"100000"`
}

// DatabaseConfig holds PostgreSQL connection settings for the seeder.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"mimic"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"mimic"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"10"`
}

// URL renders the pgx connection string.
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Database, d.SSLMode)
}

// Load reads configuration from config.yaml with environment variable
// overrides. A missing config.yaml is not an error; the engine is usable as a
// pure CLI with env-only (or all-default) configuration. The version parameter
// is injected at build time and set on the returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{Version: version}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, nil
}
