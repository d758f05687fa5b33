// Package config loads and saves the gffio tool configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Config represents the gffio configuration
type Config struct {
	GFFPath  string `yaml:"gff_path"`  // default annotation file
	IndexDir string `yaml:"index_dir"` // directory for the feature index
	Port     int    `yaml:"port"`      // API listen port
	Bind     string `yaml:"bind"`      // API bind address
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		IndexDir: "./gffio-index",
		Port:     8080,
		Bind:     "127.0.0.1",
	}
}

// LoadConfig loads configuration from the specified path. Paths in the
// file may use "~" for the home directory; they are expanded on load.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.GFFPath, err = homedir.Expand(config.GFFPath); err != nil {
		return nil, fmt.Errorf("invalid gff_path: %w", err)
	}
	if config.IndexDir, err = homedir.Expand(config.IndexDir); err != nil {
		return nil, fmt.Errorf("invalid index_dir: %w", err)
	}

	return &config, nil
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./gffio.yaml"
	}
	return filepath.Join(homeDir, ".config", "gffio", "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
