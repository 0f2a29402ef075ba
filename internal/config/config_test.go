package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "SCHEMA", "DB_CONNECTION_LIMIT", "DB_LOG_LEVEL", "SQLITE_DRIVER"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("Expected port 3000, got %s", cfg.Port)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("Expected empty DATABASE_URL, got %s", cfg.DatabaseURL)
	}
	if cfg.Schema != SchemaProfile {
		t.Errorf("Expected schema %s, got %s", SchemaProfile, cfg.Schema)
	}
	if cfg.DBConnectionLimit != 5 {
		t.Errorf("Expected connection limit 5, got %d", cfg.DBConnectionLimit)
	}
	if cfg.DBLogLevel != "warn" {
		t.Errorf("Expected log level warn, got %s", cfg.DBLogLevel)
	}
	if cfg.SQLiteDriver != "cgo" {
		t.Errorf("Expected sqlite driver cgo, got %s", cfg.SQLiteDriver)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/starwars")
	t.Setenv("SCHEMA", "Favorites")
	t.Setenv("DB_CONNECTION_LIMIT", "12")
	t.Setenv("DB_LOG_LEVEL", "INFO")
	t.Setenv("SQLITE_DRIVER", "pure")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8080" || cfg.DatabaseURL != "postgres://u:p@db:5432/starwars" {
		t.Errorf("Unexpected server/database config: %+v", cfg)
	}
	if cfg.Schema != SchemaFavorites {
		t.Errorf("Expected schema to be lowercased to %s, got %s", SchemaFavorites, cfg.Schema)
	}
	if cfg.DBConnectionLimit != 12 || cfg.DBLogLevel != "info" || cfg.SQLiteDriver != "pure" {
		t.Errorf("Unexpected database tuning: %+v", cfg)
	}
}

func TestLoadInvalidConnectionLimitFallsBack(t *testing.T) {
	t.Setenv("SCHEMA", "")
	t.Setenv("SQLITE_DRIVER", "")
	t.Setenv("DB_CONNECTION_LIMIT", "lots")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBConnectionLimit != 5 {
		t.Errorf("Expected fallback limit 5, got %d", cfg.DBConnectionLimit)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown schema", "SCHEMA", "galaxy"},
		{"unknown sqlite driver", "SQLITE_DRIVER", "wasm"},
		{"zero connections", "DB_CONNECTION_LIMIT", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SCHEMA", "")
			t.Setenv("SQLITE_DRIVER", "")
			t.Setenv("DB_CONNECTION_LIMIT", "")
			t.Setenv(tt.key, tt.val)

			if _, err := Load(); err == nil {
				t.Errorf("Expected an error for %s=%s", tt.key, tt.val)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	if err := LoadEnvFile(""); err != nil {
		t.Errorf("Expected no error for an empty filename, got %v", err)
	}

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("STARWARS_TEST_KEY=tatooine\nPORT=9999\n"), 0o600); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	// Existing variables win over the file
	t.Setenv("PORT", "4000")
	t.Setenv("STARWARS_TEST_KEY", "")
	os.Unsetenv("STARWARS_TEST_KEY")

	if err := LoadEnvFile(envFile); err != nil {
		t.Fatalf("LoadEnvFile failed: %v", err)
	}
	if got := os.Getenv("STARWARS_TEST_KEY"); got != "tatooine" {
		t.Errorf("Expected STARWARS_TEST_KEY=tatooine, got %q", got)
	}
	if got := os.Getenv("PORT"); got != "4000" {
		t.Errorf("Expected PORT to stay 4000, got %q", got)
	}

	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("Expected an error for a missing env file")
	}
}
