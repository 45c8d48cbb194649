// Package config loads the gallery configuration with Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	dir       string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager rooted at the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithDir(configDir)
}

// NewManagerWithDir creates a configuration manager reading config.toml from dir.
func NewManagerWithDir(dir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	// TABGALLERY_GALLERY_DEMO_TABS, TABGALLERY_LOGGING_LEVEL, ...
	v.SetEnvPrefix("TABGALLERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "TABGALLERY_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TABGALLERY_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TABGALLERY_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TABGALLERY_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		dir:       dir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written when none exists.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.dir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "console"
	}

	config.Gallery.NewTabHeader = strings.TrimSpace(config.Gallery.NewTabHeader)
	if config.Gallery.NewTabHeader == "" {
		config.Gallery.NewTabHeader = DefaultConfig().Gallery.NewTabHeader
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configFile()
}

func (m *Manager) configFile() string {
	return filepath.Join(m.dir, "config.toml")
}

// createDefaultConfig writes the defaults to config.toml.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(m.configFile()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)

	m.viper.SetDefault("gallery.demo_tabs", defaults.Gallery.DemoTabs)
	m.viper.SetDefault("gallery.header_format", defaults.Gallery.HeaderFormat)
	m.viper.SetDefault("gallery.content_format", defaults.Gallery.ContentFormat)
	m.viper.SetDefault("gallery.new_tab_header", defaults.Gallery.NewTabHeader)
	m.viper.SetDefault("gallery.close_empty_windows", defaults.Gallery.CloseEmptyWindows)
}
