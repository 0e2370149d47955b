package config

import (
	"os"
	"strconv"
	"time"

	"gobasket/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Ops      OpsConfig
	Mining   MiningConfig
	Import   ImportConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
	// APIToken is the shared secret the surrounding deployment uses for
	// request authentication. Explicit configuration, never a process
	// global; empty disables the check.
	APIToken string
}

// OpsConfig holds the operational endpoint settings
type OpsConfig struct {
	Port    string
	Enabled bool
}

// MiningConfig holds mining engine settings
type MiningConfig struct {
	// MaxItemsetSize caps Apriori exploration depth (reference value 3)
	MaxItemsetSize int
	// RunTimeout bounds a single orchestrated run; the full-scan counting
	// degrades badly on pathological input sizes
	RunTimeout time.Duration
	// BenchmarkRounds is the repetition count for timing summaries
	BenchmarkRounds int
	// MaxBaskets rejects oversized inputs before mining starts; 0 disables
	MaxBaskets int
}

// ImportConfig holds transaction import settings
type ImportConfig struct {
	// MaxRows caps rows read from one uploaded file
	MaxRows int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDurationOrDefault("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Server: ServerConfig{
			Port:     getEnvOrDefault("PORT", "8080"),
			GinMode:  getEnvOrDefault("GIN_MODE", "release"),
			APIToken: os.Getenv("API_TOKEN"),
		},
		Ops: OpsConfig{
			Port:    getEnvOrDefault("OPS_PORT", "9090"),
			Enabled: getEnvBoolOrDefault("OPS_ENABLED", true),
		},
		Mining: MiningConfig{
			MaxItemsetSize:  getEnvIntOrDefault("MINING_MAX_ITEMSET_SIZE", 3),
			RunTimeout:      getEnvDurationOrDefault("MINING_RUN_TIMEOUT", 30*time.Second),
			BenchmarkRounds: getEnvIntOrDefault("MINING_BENCHMARK_ROUNDS", 5),
			MaxBaskets:      getEnvIntOrDefault("MINING_MAX_BASKETS", 0),
		},
		Import: ImportConfig{
			MaxRows: getEnvIntOrDefault("IMPORT_MAX_ROWS", 100000),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required")
	}
	if cfg.Mining.MaxItemsetSize < 1 {
		return errors.ConfigInvalid("MINING_MAX_ITEMSET_SIZE must be at least 1")
	}
	if cfg.Mining.BenchmarkRounds < 1 {
		return errors.ConfigInvalid("MINING_BENCHMARK_ROUNDS must be at least 1")
	}
	if cfg.Mining.RunTimeout <= 0 {
		return errors.ConfigInvalid("MINING_RUN_TIMEOUT must be positive")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBoolOrDefault(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDurationOrDefault(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
