package config

import (
	"os"
	"path/filepath"
)

const (
	appName  = "columns"
	fileName = "columns.toml"
)

// DefaultPath returns the config file location using the XDG standard
// (~/.config/columns/columns.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}
