package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xolan/dayreport/internal/osutil"
)

const (
	// AppName is the application name used for config directory
	AppName = "dayreport"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration. Command-line flags
// override any value set here.
type Config struct {
	// GitPaths and SvnPaths are repository paths to collect from.
	GitPaths []string `toml:"git_paths"`
	SvnPaths []string `toml:"svn_paths"`
	// NotesFile is a fixed note file; NotesDir is scanned for a
	// <date>.txt file when NotesFile is unset.
	NotesFile string `toml:"notes_file"`
	NotesDir  string `toml:"notes_dir"`
	// Discover enables repository auto-discovery under DiscoverRoots.
	Discover      bool     `toml:"discover"`
	DiscoverRoots []string `toml:"discover_roots"`
	// IncludeWorking folds uncommitted changes into the report.
	IncludeWorking bool `toml:"include_working"`
	// Author restricts commit collection to one identity ("" = all).
	Author string `toml:"author"`
	// Format is the default output format (md, html, csv, json).
	Format string `toml:"format"`
	// OutputDir receives date-named report files when no explicit
	// output path is given.
	OutputDir string `toml:"output_dir"`
}

// DefaultConfig returns a Config with sensible defaults.
// - include_working: true (uncommitted work is part of the day)
// - format: "md"
func DefaultConfig() Config {
	return Config{
		IncludeWorking: true,
		Format:         "md",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads and validates the config file at path.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config file, falling back to defaults when the
// file does not exist. A present-but-invalid file is still an error.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Normalize brings fields to canonical form.
func (c *Config) Normalize() {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "" {
		c.Format = "md"
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.Format {
	case "md", "html", "csv", "json":
	default:
		return fmt.Errorf("invalid format %q in config (use md, html, csv, or json)", c.Format)
	}
	return nil
}

// GenerateSampleConfig returns a commented sample config file.
func GenerateSampleConfig() string {
	return `# dayreport configuration file

# Git repositories to collect commits from
git_paths = []

# Subversion working copies to collect commits from
svn_paths = []

# Fixed note file, one activity per line ("HH:MM text" or free text)
notes_file = ""

# Directory scanned for a <date>.txt note file when notes_file is unset
notes_dir = ""

# Auto-discover repositories under discover_roots
discover = false
discover_roots = []

# Fold uncommitted working changes into the report
include_working = true

# Only collect commits by this author ("" = all authors)
author = ""

# Default output format: md, html, csv, or json
format = "md"

# Directory for date-named report files (default: ./reports)
output_dir = ""
`
}
