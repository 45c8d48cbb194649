package config

// Config holds the gallery configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging" jsonschema:"description=Log output settings"`
	Gallery GalleryConfig `mapstructure:"gallery" toml:"gallery" json:"gallery" jsonschema:"description=Tab window gallery settings"`
}

// LoggingConfig controls log verbosity and output format.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
	// File receives logs while the TUI owns the terminal. Empty means discard.
	File string `mapstructure:"file" toml:"file" json:"file,omitempty"`
}

// GalleryConfig controls the demo windows.
type GalleryConfig struct {
	// DemoTabs is the number of tabs the first window starts with.
	DemoTabs int `mapstructure:"demo_tabs" toml:"demo_tabs" json:"demo_tabs" jsonschema:"minimum=0,maximum=64,default=3"`
	// HeaderFormat formats a demo tab header from its index.
	HeaderFormat string `mapstructure:"header_format" toml:"header_format" json:"header_format" jsonschema:"default=Item %d"`
	// ContentFormat formats a demo tab payload from its index.
	ContentFormat string `mapstructure:"content_format" toml:"content_format" json:"content_format" jsonschema:"default=Page %d"`
	// NewTabHeader is the header of tabs created with the add button.
	NewTabHeader string `mapstructure:"new_tab_header" toml:"new_tab_header" json:"new_tab_header" jsonschema:"default=New Item"`
	// CloseEmptyWindows closes a window once its last tab is closed.
	CloseEmptyWindows bool `mapstructure:"close_empty_windows" toml:"close_empty_windows" json:"close_empty_windows" jsonschema:"default=true"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Gallery: GalleryConfig{
			DemoTabs:          3,
			HeaderFormat:      "Item %d",
			ContentFormat:     "Page %d",
			NewTabHeader:      "New Item",
			CloseEmptyWindows: true,
		},
	}
}
