package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Schema names select which of the two data models a process serves
const (
	SchemaProfile   = "profile"
	SchemaFavorites = "favorites"
)

// DefaultDatabasePath is the file-backed store used when DATABASE_URL is not set
const DefaultDatabasePath = "/tmp/test.db"

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	DatabaseURL       string // empty means the local sqlite file
	Schema            string // profile or favorites
	DBConnectionLimit int
	DBLogLevel        string // silent, error, warn, info
	SQLiteDriver      string // cgo or pure
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		Schema:            strings.ToLower(getEnv("SCHEMA", SchemaProfile)),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		DBLogLevel:        strings.ToLower(getEnv("DB_LOG_LEVEL", "warn")),
		SQLiteDriver:      strings.ToLower(getEnv("SQLITE_DRIVER", "cgo")),
	}

	// Validate enumerations
	switch cfg.Schema {
	case SchemaProfile, SchemaFavorites:
	default:
		return nil, fmt.Errorf("SCHEMA must be %q or %q, got %q", SchemaProfile, SchemaFavorites, cfg.Schema)
	}
	switch cfg.SQLiteDriver {
	case "cgo", "pure":
	default:
		return nil, fmt.Errorf("SQLITE_DRIVER must be \"cgo\" or \"pure\", got %q", cfg.SQLiteDriver)
	}
	if cfg.DBConnectionLimit < 1 {
		return nil, fmt.Errorf("DB_CONNECTION_LIMIT must be positive")
	}

	return cfg, nil
}

// LoadEnvFile loads variables from a .env file into the process environment.
// Variables already present in the environment are not overridden.
func LoadEnvFile(filename string) error {
	if filename == "" {
		return nil
	}
	if err := godotenv.Load(filename); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", filename, err)
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
