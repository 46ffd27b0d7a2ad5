// Package config loads postboard configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
)

// HTTPPort is the fixed port the HTTP server listens on.
const HTTPPort = "3000"

// Config holds all runtime configuration for the postboard process.
type Config struct {
	PostgresHost     string
	PostgresPort     string
	PostgresDB       string
	PostgresUser     string
	PostgresPassword string
	NatsURL          string // optional; empty disables event publishing
	Env              string // "local" or "prod"
}

// Load reads configuration from environment variables, applying the
// documented defaults for anything unset.
func Load() Config {
	return Config{
		PostgresHost:     getEnv("POSTGRES_HOST", "database"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresDB:       getEnv("POSTGRES_DB", "postgres"),
		PostgresUser:     getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "password"),
		NatsURL:          getEnv("NATS_URL", ""),
		Env:              getEnv("APP_ENV", "local"),
	}
}

// DatabaseURL builds a pgx-compatible connection string from the
// POSTGRES_* settings.
func (c Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}
