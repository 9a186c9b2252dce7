// Package config loads application configuration from environment variables.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  Every value has a default so the server
// runs with no environment at all; a .env file is honoured when present.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on
}

// Load reads configuration from the environment.  A missing .env file is
// not an error.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Env:  getEnv("APP_ENV", "dev"),
		Port: getEnv("APP_PORT", "8080"),
	}
}

// getEnv retrieves an environment variable, falling back to def when the
// variable is unset or empty.
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
