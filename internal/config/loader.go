package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/savonarola/emqx-mcp-server/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/emqx-mcp-server"
	configFileName = "config.yaml"
)

// Environment variables recognized by the loader. They override any value
// from the configuration file.
const (
	EnvAPIURL    = "EMQX_API_URL"
	EnvAPIKey    = "EMQX_API_KEY"
	EnvAPISecret = "EMQX_API_SECRET"
)

// DefaultConfigPath returns the directory the config.yaml is read from when
// no explicit path is given.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// LoadConfig loads configuration from the given directory, falling back to
// defaults when no config.yaml exists, and applies environment variable
// overrides on top. An empty configPath selects the user config directory.
func LoadConfig(configPath string) (Config, error) {
	config := GetDefaultConfig()

	if configPath == "" {
		var err error
		configPath, err = DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
	}

	configFilePath := filepath.Join(configPath, configFileName)
	data, err := os.ReadFile(configFilePath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logging.Info("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
	case err != nil:
		logging.Info("ConfigLoader", "Error loading config.yaml from %s: %s", configFilePath, err)
		return Config{}, err
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			// config malformed
			return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
		}
		logging.Info("ConfigLoader", "Loaded configuration from %s", configFilePath)
	}

	applyEnvOverrides(&config)
	return config, nil
}

// applyEnvOverrides copies credential settings from the process environment.
// Environment always wins over the file.
func applyEnvOverrides(config *Config) {
	if v, ok := os.LookupEnv(EnvAPIURL); ok {
		config.API.URL = v
	}
	if v, ok := os.LookupEnv(EnvAPIKey); ok {
		config.API.Key = v
	}
	if v, ok := os.LookupEnv(EnvAPISecret); ok {
		config.API.Secret = v
	}
}
