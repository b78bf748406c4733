// Package config resolves application configuration from the YAML config
// file and environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	EnvConfigPath   = "CONFIG_PATH"
	EnvDBConnection = "DB_CONNECTION"
	EnvDemoUserID   = "DEMO_USER_ID"
)

// DefaultDatabaseDSN is a shared in-memory SQLite database. State does not
// survive a restart, matching the default non-durable mode.
const DefaultDatabaseDSN = "file:habittrack?mode=memory&cache=shared"

// DefaultDemoUserID is the identity assumed for requests that carry no user
// header.
const DefaultDemoUserID = "demo-user-1"

// AppConfig holds resolved application configuration values.
type AppConfig struct {
	ConfigPath string
}

// LoadFromEnv loads app config from environment variables.
func LoadFromEnv() (AppConfig, error) {
	return AppConfig{ConfigPath: ResolveConfigPath(os.Getenv(EnvConfigPath))}, nil
}

// ResolveConfigPath normalizes the config path and applies defaults.
func ResolveConfigPath(p string) string {
	trimmed := strings.TrimSpace(p)
	if trimmed == "" {
		trimmed = "./config.yaml"
	}
	if abs, err := filepath.Abs(trimmed); err == nil {
		return abs
	}
	return trimmed
}

// LoadDatabaseDSN reads the database DSN from the YAML config file. The
// DB_CONNECTION env var wins over the file, and an absent or empty config
// falls back to the in-memory default.
func LoadDatabaseDSN(configPath string) (string, error) {
	if dsn := strings.TrimSpace(os.Getenv(EnvDBConnection)); dsn != "" {
		return dsn, nil
	}

	// fileConfig maps the YAML fields needed for DSN resolution.
	type fileConfig struct {
		DatabaseDSN string `yaml:"database-dsn"`
		Database    struct {
			DSN string `yaml:"dsn"`
		} `yaml:"database"`
	}

	data, errRead := os.ReadFile(configPath)
	if errRead != nil {
		if os.IsNotExist(errRead) {
			return DefaultDatabaseDSN, nil
		}
		return "", fmt.Errorf("read config file: %w", errRead)
	}

	var cfg fileConfig
	if errUnmarshal := yaml.Unmarshal(data, &cfg); errUnmarshal != nil {
		return "", fmt.Errorf("parse config file: %w", errUnmarshal)
	}

	if dsn := strings.TrimSpace(cfg.DatabaseDSN); dsn != "" {
		return dsn, nil
	}
	if dsn := strings.TrimSpace(cfg.Database.DSN); dsn != "" {
		return dsn, nil
	}
	return DefaultDatabaseDSN, nil
}

// LoadDemoUserID resolves the fallback identity for anonymous requests.
func LoadDemoUserID(configPath string) (string, error) {
	if id := strings.TrimSpace(os.Getenv(EnvDemoUserID)); id != "" {
		return id, nil
	}

	// fileConfig maps the YAML field for the demo identity.
	type fileConfig struct {
		DemoUserID string `yaml:"demo-user-id"`
	}

	data, errRead := os.ReadFile(configPath)
	if errRead != nil {
		if os.IsNotExist(errRead) {
			return DefaultDemoUserID, nil
		}
		return "", fmt.Errorf("read config file: %w", errRead)
	}

	var cfg fileConfig
	if errUnmarshal := yaml.Unmarshal(data, &cfg); errUnmarshal != nil {
		return "", fmt.Errorf("parse config file: %w", errUnmarshal)
	}

	if id := strings.TrimSpace(cfg.DemoUserID); id != "" {
		return id, nil
	}
	return DefaultDemoUserID, nil
}
