// Package config resolves runtime settings. Defaults need no environment at
// all; a .env file or FILM_* variables only override them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	DefaultDatabasePath = "film.db"
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600

	EnvDatabasePath = "FILM_DB_PATH"
	EnvLogLevel     = "FILM_LOG_LEVEL"
	EnvJSONLogs     = "FILM_JSON_LOGS"
	EnvDebug        = "DEBUG"
)

type Config struct {
	DatabasePath string
	LogLevel     zerolog.Level
	JSONLogs     bool
	WindowWidth  float32
	WindowHeight float32
}

func Default() Config {
	return Config{
		DatabasePath: DefaultDatabasePath,
		LogLevel:     zerolog.InfoLevel,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}
}

// Load reads an optional .env from the working directory, then applies
// environment overrides on top of Default.
func Load() (Config, error) {
	return LoadFrom(".env")
}

func LoadFrom(envFile string) (Config, error) {
	if envFile != "" {
		// godotenv.Load never overwrites variables that are already set.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()

	if v := strings.TrimSpace(os.Getenv(EnvDatabasePath)); v != "" {
		cfg.DatabasePath = v
	}

	if os.Getenv(EnvDebug) == "1" {
		cfg.LogLevel = zerolog.DebugLevel
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(v))
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvLogLevel, v, err)
		}
		cfg.LogLevel = level
	}

	if v := strings.TrimSpace(os.Getenv(EnvJSONLogs)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvJSONLogs, v, err)
		}
		cfg.JSONLogs = b
	}

	return cfg, nil
}
