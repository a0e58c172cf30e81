package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var defaults = map[string]any{
	"APP_PORT":                "8080",
	"APP_ENV":                 "dev",
	"LOG_LEVEL":               "info",
	"STORAGE_DRIVER":          StoragePostgres,
	"DATABASE_URL":            "",
	"RUN_MIGRATIONS":          true,
	"BANKING_API_BASE_URL":    "http://localhost:5001/api",
	"BANKING_API_KEY":         "",
	"BANKING_VERIFY_ENDPOINT": false,
	"BANKING_TIMEOUT":         "10s",
	"SHUTDOWN_TIMEOUT":        "15s",
}

// Load reads a .env file when one is present, then the process environment.
// Environment variables win over the file.
func Load() (App, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read .env; using environment values", "err", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(k, d)
		_ = v.BindEnv(k)
	}

	var cfg App
	if err := v.Unmarshal(&cfg); err != nil {
		return App{}, fmt.Errorf("decode config: %w", err)
	}

	// PaaS hosts inject PORT
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.Port = port
	}
	cfg.Storage = strings.ToLower(strings.TrimSpace(cfg.Storage))
	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)

	switch cfg.Storage {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return App{}, errors.New("DATABASE_URL is required when STORAGE_DRIVER=postgres")
		}
	case StorageMemory:
	default:
		return App{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage)
	}
	return cfg, nil
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (a App) SlogLevel() slog.Level {
	switch strings.ToLower(a.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
