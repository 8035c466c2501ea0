package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/dayreport/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for dayreport.

Shows the configuration file location, whether it exists, and all current
settings. Values are merged from the config file with sensible defaults.

By default, dayreport works without any configuration file: repositories
come from flags, working changes are included, and reports render as
markdown into ./reports.

Examples:

  Display current configuration:
    dayreport config                 Show all current settings

  Create a starter config file:
    dayreport config init            Write a commented sample config

Configuration file location:
  ~/.config/dayreport/config.toml    Linux/macOS
  %APPDATA%\dayreport\config.toml    Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented sample config file",
	Long: `Write a commented sample configuration file to the default location.

Fails if a config file already exists, so an edited config is never
overwritten.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

// showConfig displays the current effective configuration
func showConfig() {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return
	}

	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", configPath)
		_, _ = fmt.Fprintln(deps.Stderr, "Valid format values: md, html, csv, json")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for dayreport")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:     %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Git Paths:       %s\n", pathList(cfg.GitPaths))
	_, _ = fmt.Fprintf(deps.Stdout, "Svn Paths:       %s\n", pathList(cfg.SvnPaths))
	if cfg.NotesFile != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "Notes File:      %s\n", cfg.NotesFile)
	} else if cfg.NotesDir != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "Notes Dir:       %s\n", cfg.NotesDir)
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Notes:           (none)")
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Discover:        %t\n", cfg.Discover)
	if cfg.Discover {
		_, _ = fmt.Fprintf(deps.Stdout, "Discover Roots:  %s\n", pathList(cfg.DiscoverRoots))
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Include Working: %t\n", cfg.IncludeWorking)
	if cfg.Author != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "Author Filter:   %s\n", cfg.Author)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Output Format:   %s\n", cfg.Format)
	if cfg.OutputDir == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "Output Dir:      reports (default)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Output Dir:      %s\n", cfg.OutputDir)
	}

	_, _ = fmt.Fprintln(deps.Stdout)

	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Run 'dayreport config init' to create a commented starter config.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}

// initConfig writes the sample config, refusing to overwrite an
// existing file.
func initConfig() {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if _, err := os.Stat(configPath); err == nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Config file already exists")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %s\n", configPath)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Edit the existing file, or delete it first to start over")
		deps.Exit(1)
		return
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to create config directory")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
	if err := os.WriteFile(configPath, []byte(config.GenerateSampleConfig()), 0644); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write config file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Config file created: %s\n", configPath)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit it to set your repositories, notes location, and output format.")
}

func pathList(paths []string) string {
	if len(paths) == 0 {
		return "(none)"
	}
	return strings.Join(paths, ", ")
}
