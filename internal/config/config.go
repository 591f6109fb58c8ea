package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Board Board `yaml:"board"`
	Theme Theme `yaml:"theme"`
}

// Board holds the board geometry settings. The drag collision layout is
// derived from the same values the renderer uses, so these stay in one place.
type Board struct {
	ColumnWidth    int `yaml:"column_width"`    // Total column box width including borders
	CardHeight     int `yaml:"card_height"`     // Fixed card box height including borders
	VisibleColumns int `yaml:"visible_columns"` // Columns shown before horizontal scrolling
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tablero", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tablero", "config.yaml"), nil
}

func defaultConfig() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Board.ColumnWidth <= 0 {
		c.Board.ColumnWidth = 30
	}
	if c.Board.CardHeight <= 0 {
		c.Board.CardHeight = 4
	}
	if c.Board.VisibleColumns <= 0 {
		c.Board.VisibleColumns = 4
	}
	c.Theme.applyDefaults()
}
