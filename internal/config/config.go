// Package config handles loading runtime configuration for the Let's hang API.
// Configuration values (like the port and database URL) are read from environment variables
// rather than being hardcoded, so the same binary can run locally, in CI, and in production
// with nothing more than a different set of environment variables.
package config

import (
	"os"
	"strconv"
	"time"

	// godotenv reads a .env file and loads its key=value pairs into the process environment.
	// In production, real env vars are set by the platform and the .env file is simply absent.
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values for the application.
type Config struct {
	Port           string        // The TCP port the HTTP server listens on (e.g., "3001")
	DatabaseURL    string        // PostgreSQL connection string; empty means "no store configured"
	Env            string        // "development", "staging", or "production"
	LogLevel       string        // zerolog level name: debug, info, warn, error
	StoreTimeout   time.Duration // Deadline applied to every store query
	MaxOpenConns   int           // Upper bound on open connections in the pool
	MaxIdleConns   int           // Connections kept idle in the pool between requests
	AutoMigrate    bool          // Run pending migrations before serving
	MigrationsPath string        // golang-migrate source URL, e.g. "file://migrations"
}

// Load reads configuration from environment variables and returns a populated Config.
// A .env file in the working directory is loaded first if present; a missing file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "3001"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		StoreTimeout:   getDurationEnv("STORE_TIMEOUT", 5*time.Second),
		MaxOpenConns:   getIntEnv("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:   getIntEnv("DB_MAX_IDLE_CONNS", 5),
		AutoMigrate:    getBoolEnv("AUTO_MIGRATE", true),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
	}
}

// HasStore reports whether a database has been configured.
// Without one the server still starts, but only the static endpoints are mounted.
func (c *Config) HasStore() bool {
	return c.DatabaseURL != ""
}

// IsDevelopment reports whether the app runs in the local development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
