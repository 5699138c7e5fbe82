// Package config builds the server configuration once at startup.
// Handlers receive the resulting struct and never read the environment
// themselves.
package config

import "os"

// Config holds runtime settings for the recipe server.
//
// Fields:
//   - Addr: bind address for the HTTP listener.
//   - DatabasePath: SQLite database file (parent dirs created on open).
//   - Secret: HMAC secret for signing bearer tokens (HS256).
//   - LogLevel: zerolog level name (debug, info, warn, error).
type Config struct {
	Addr         string
	DatabasePath string
	Secret       string
	LogLevel     string
}

// Load applies development defaults and overlays values from the
// environment (PORT, DB_PATH, SECRET, LOG_LEVEL).
// NOTE: the default secret is insecure and must be overridden in prod.
func Load() Config {
	cfg := Config{
		Addr:         ":3000",
		DatabasePath: "./data/recipes.db",
		Secret:       "dev_secret_change_me",
		LogLevel:     "info",
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("SECRET"); v != "" {
		cfg.Secret = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}
