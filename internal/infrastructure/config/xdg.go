package config

import (
	"os"
	"path/filepath"
)

const (
	appName = "tabgallery"
	dirPerm = 0o755
)

// GetConfigDir returns $XDG_CONFIG_HOME/tabgallery (default: ~/.config/tabgallery).
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

// GetConfigFile returns the default config file path.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
