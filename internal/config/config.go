// Package config reads process settings from the environment, optionally
// seeded from a .env file, and builds the shared logger.
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"seed-maze/internal/generate"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds settings shared by the game binaries. Command-line flags
// take their defaults from here.
type Config struct {
	Port     int           // MAZE_PORT
	HostKey  string        // MAZE_HOST_KEY
	Tier     generate.Tier // MAZE_TIER
	LogFile  string        // MAZE_LOG_FILE
	LogLevel zerolog.Level // LOG_LEVEL
}

// Load reads .env (if present) and then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(k, def string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		HostKey: get("MAZE_HOST_KEY", "server_host_key"),
		LogFile: get("MAZE_LOG_FILE", ""),
	}

	port, err := strconv.Atoi(get("MAZE_PORT", "2222"))
	if err != nil || port < 1 || port > 65535 {
		return cfg, fmt.Errorf("MAZE_PORT: invalid port %q", getenv("MAZE_PORT"))
	}
	cfg.Port = port

	if cfg.Tier, err = generate.ParseTier(get("MAZE_TIER", "easy")); err != nil {
		return cfg, fmt.Errorf("MAZE_TIER: %w", err)
	}
	if cfg.LogLevel, err = zerolog.ParseLevel(get("LOG_LEVEL", "info")); err != nil {
		return cfg, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return cfg, nil
}

// Logger returns a leveled logger writing to w.
func (c Config) Logger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(c.LogLevel).With().Timestamp().Logger()
}

// ConsoleLogger is Logger with human-readable output for terminals.
func (c Config) ConsoleLogger(w io.Writer) zerolog.Logger {
	return c.Logger(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"})
}
