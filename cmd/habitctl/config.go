package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys.
	cfgKeyServer = "server"
	cfgKeyUserID = "user-id"

	defaultServerURL = "http://localhost:5000"
)

// configDir returns the habitctl configuration directory.
func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "habitctl"), nil
}

// loadConfig reads config.yaml from the habitctl config directory using
// Viper. A missing config file is not an error.
func loadConfig() (*viper.Viper, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	if errMkdir := os.MkdirAll(dir, 0o755); errMkdir != nil {
		return nil, fmt.Errorf("ensure config dir: %w", errMkdir)
	}

	v := viper.New()
	v.SetDefault(cfgKeyServer, defaultServerURL)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	if errRead := v.ReadInConfig(); errRead != nil {
		if _, ok := errRead.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", errRead)
	}
	return v, nil
}

// saveConfig writes the current configuration back to config.yaml.
func saveConfig(v *viper.Viper) error {
	dir, err := configDir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, configFileName+"."+configFileType)
	if errWrite := v.WriteConfigAs(path); errWrite != nil {
		return fmt.Errorf("write config: %w", errWrite)
	}
	return nil
}

// resolveServerURL returns the server base URL with flag > config precedence.
func resolveServerURL() string {
	if flagServer != "" {
		return flagServer
	}
	return cliConfig.GetString(cfgKeyServer)
}
