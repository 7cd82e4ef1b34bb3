// Package config reads runtime settings from the environment and an optional
// .env file in the working directory.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvDB       = "QUIZTERM_DB"
	EnvCatalog  = "QUIZTERM_CATALOG"
	EnvLogLevel = "QUIZTERM_LOG_LEVEL"
	EnvLogFile  = "QUIZTERM_LOG_FILE"
	EnvTheme    = "QUIZTERM_THEME"
	EnvAddr     = "QUIZTERM_ADDR"
	EnvBasePath = "QUIZTERM_BASE_PATH"
)

// DefaultBasePath is the path prefix the catalog server mounts under.
const DefaultBasePath = "/Frontend-quiz-app/"

type Config struct {
	// Storage
	DBPath string // "" = XDG default

	// Catalog source: file path, http(s) URL, or "" for the embedded document.
	Catalog string

	// Logging
	LogLevel slog.Level
	LogFile  string // "" = <data dir>/quizterm.log for the TUI

	// Theme overrides the terminal dark-background signal ("light"/"dark").
	Theme string

	// Server
	Addr     string
	BasePath string
}

// Load reads .env (if present) and the environment.
func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return fromEnv()
}

// LoadFiles is Load with explicit .env files. Missing files are an error.
func LoadFiles(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		return nil, err
	}
	return fromEnv(), nil
}

func fromEnv() *Config {
	return &Config{
		DBPath:   getEnvOrDefault(EnvDB, ""),
		Catalog:  getEnvOrDefault(EnvCatalog, ""),
		LogLevel: ParseLevel(getEnvOrDefault(EnvLogLevel, "info")),
		LogFile:  getEnvOrDefault(EnvLogFile, ""),
		Theme:    getEnvOrDefault(EnvTheme, ""),
		Addr:     getEnvOrDefault(EnvAddr, ":8080"),
		BasePath: NormalizeBasePath(getEnvOrDefault(EnvBasePath, DefaultBasePath)),
	}
}

// ParseLevel maps debug|info|warn|error to a slog level. Unknown values are info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NormalizeBasePath returns p with exactly one leading and one trailing slash.
func NormalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return "/"
	}
	return "/" + p + "/"
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
