package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backend selectors. The expense ledger is a single pluggable
// repository interface; which implementation backs it is configuration.
const (
	BackendPgsql  = "pgsql"
	BackendSqlite = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Storage selection
	StorageBackend string
	DatabaseURL    string // pgsql backend
	SQLitePath     string // sqlite backend

	// Rate limit in ulule/limiter format, e.g. "100-M"
	RateLimit string

	// CORS
	AllowedOrigins []string

	// Drawer flick-open velocity threshold; 0 keeps the built-in default.
	DrawerVelocityThreshold float64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORAGE_BACKEND", BackendSqlite)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SQLITE_PATH", "data/expenses.db")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("ALLOWED_ORIGINS", []string{"*"})
	viper.SetDefault("DRAWER_VELOCITY_THRESHOLD", 500.0)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.StorageBackend = viper.GetString("STORAGE_BACKEND")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.SQLitePath = viper.GetString("SQLITE_PATH")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.AllowedOrigins = viper.GetStringSlice("ALLOWED_ORIGINS")
	cfg.DrawerVelocityThreshold = viper.GetFloat64("DRAWER_VELOCITY_THRESHOLD")

	switch cfg.StorageBackend {
	case BackendPgsql:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("STORAGE_BACKEND is %s but PGSQL_URL is not set", BackendPgsql)
		}
	case BackendSqlite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("STORAGE_BACKEND is %s but SQLITE_PATH is not set", BackendSqlite)
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	if cfg.DrawerVelocityThreshold <= 0 {
		log.Printf("Warning: DRAWER_VELOCITY_THRESHOLD must be positive. Using built-in default.\n")
		cfg.DrawerVelocityThreshold = 0
	}

	return cfg, nil
}
