package config

import (
	"fmt"
	"strings"
)

const maxDemoTabs = 64

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateGallery(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
		return nil
	default:
		return []string{fmt.Sprintf("logging.level %q must be one of trace, debug, info, warn, error, disabled", config.Logging.Level)}
	}
}

func validateGallery(config *Config) []string {
	var validationErrors []string
	if config.Gallery.DemoTabs < 0 || config.Gallery.DemoTabs > maxDemoTabs {
		validationErrors = append(validationErrors, fmt.Sprintf("gallery.demo_tabs must be between 0 and %d", maxDemoTabs))
	}
	if strings.Count(config.Gallery.HeaderFormat, "%d") != 1 {
		validationErrors = append(validationErrors, "gallery.header_format must contain exactly one %d")
	}
	if strings.Count(config.Gallery.ContentFormat, "%d") != 1 {
		validationErrors = append(validationErrors, "gallery.content_format must contain exactly one %d")
	}
	return validationErrors
}
