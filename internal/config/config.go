// Package config provides configuration types and defaults for tessera.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"tessera/internal/log"
)

// Config holds all configuration options for the tessera demo.
type Config struct {
	Debug   bool        `mapstructure:"debug"`
	LogFile string      `mapstructure:"log_file"`
	UI      UIConfig    `mapstructure:"ui"`
	Theme   ThemeConfig `mapstructure:"theme"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	Mouse     bool   `mapstructure:"mouse"`      // Enable mouse support (click to select items/tabs)
	ShowHelp  bool   `mapstructure:"show_help"`  // Show the help footer on startup
	ActiveTab string `mapstructure:"active_tab"` // Tab selected on startup (by title)
}

// ThemeConfig holds theme customization options.
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight"` // hex color for the active item/tab
	Subtle    string `mapstructure:"subtle"`    // hex color for muted text
	Error     string `mapstructure:"error"`     // hex color for errors
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Debug:   false,
		LogFile: "tessera-debug.log",
		UI: UIConfig{
			Mouse:    true,
			ShowHelp: true,
		},
		Theme: ThemeConfig{
			Highlight: "#7D56F4",
			Subtle:    "#696969",
			Error:     "#FF8787",
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Tessera Configuration

# Write a structured debug log (also enabled by --debug)
debug: false
# log_file: tessera-debug.log

# UI settings
ui:
  mouse: true        # Click to select items and tabs
  show_help: true    # Show the help footer on startup
  # active_tab: Menu # Tab selected on startup

# Theme configuration
theme:
  highlight: "#7D56F4"  # Active item/tab color
  subtle: "#696969"     # Muted text color
  error: "#FF8787"      # Error color
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
