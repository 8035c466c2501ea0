package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/xolan/dayreport/internal/osutil"
)

// Helper to create a temporary config file
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}
	return tmpFile
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.IncludeWorking {
		t.Error("DefaultConfig().IncludeWorking = false, expected true")
	}
	if cfg.Format != "md" {
		t.Errorf("DefaultConfig().Format = %q, expected %q", cfg.Format, "md")
	}
	if len(cfg.GitPaths) != 0 || len(cfg.SvnPaths) != 0 {
		t.Error("DefaultConfig() should have no repository paths")
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	tests := []struct {
		name          string
		configContent string
		check         func(t *testing.T, cfg Config)
	}{
		{
			name: "all fields set",
			configContent: `git_paths = ["/home/alex/src/app"]
svn_paths = ["/home/alex/src/legacy"]
notes_file = "/home/alex/notes.txt"
discover = true
discover_roots = ["/home/alex/src"]
include_working = false
author = "alex"
format = "json"
output_dir = "/home/alex/reports"`,
			check: func(t *testing.T, cfg Config) {
				if len(cfg.GitPaths) != 1 || cfg.GitPaths[0] != "/home/alex/src/app" {
					t.Errorf("GitPaths = %v", cfg.GitPaths)
				}
				if cfg.IncludeWorking {
					t.Error("IncludeWorking should be false")
				}
				if cfg.Author != "alex" {
					t.Errorf("Author = %q", cfg.Author)
				}
				if cfg.Format != "json" {
					t.Errorf("Format = %q", cfg.Format)
				}
			},
		},
		{
			name:          "minimal config keeps defaults",
			configContent: `git_paths = ["/repo"]`,
			check: func(t *testing.T, cfg Config) {
				if !cfg.IncludeWorking {
					t.Error("IncludeWorking default should survive a partial file")
				}
				if cfg.Format != "md" {
					t.Errorf("Format = %q, expected default md", cfg.Format)
				}
			},
		},
		{
			name:          "format normalized to lowercase",
			configContent: `format = "HTML"`,
			check: func(t *testing.T, cfg Config) {
				if cfg.Format != "html" {
					t.Errorf("Format = %q, expected html", cfg.Format)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createTempConfigFile(t, tt.configContent)
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad_InvalidFormat(t *testing.T) {
	path := createTempConfigFile(t, `format = "pdf"`)
	if _, err := Load(path); err == nil {
		t.Fatal("Load should reject an unknown format")
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := createTempConfigFile(t, `git_paths = [unterminated`)
	if _, err := Load(path); err == nil {
		t.Fatal("Load should fail on malformed TOML")
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault returned error for missing file: %v", err)
	}
	if cfg.Format != "md" || !cfg.IncludeWorking {
		t.Errorf("LoadOrDefault should return defaults, got %+v", cfg)
	}
}

func TestLoadOrDefault_InvalidFileStillFails(t *testing.T) {
	path := createTempConfigFile(t, `format = "pdf"`)
	if _, err := LoadOrDefault(path); err == nil {
		t.Fatal("LoadOrDefault should propagate validation errors for existing files")
	}
}

func TestGetConfigPath_ProviderError(t *testing.T) {
	defer osutil.ResetProvider()
	osutil.SetProvider(failingProvider{err: errors.New("permission denied")})

	if _, err := GetConfigPath(); err == nil {
		t.Fatal("GetConfigPath should propagate provider errors")
	}
}

type failingProvider struct {
	err error
}

func (p failingProvider) UserConfigDir() (string, error) {
	return "", p.err
}

func (p failingProvider) MkdirAll(string, os.FileMode) error {
	return p.err
}

func TestGenerateSampleConfig_ParsesAndMatchesDefaults(t *testing.T) {
	sample := GenerateSampleConfig()

	cfg := DefaultConfig()
	if _, err := toml.Decode(sample, &cfg); err != nil {
		t.Fatalf("sample config does not parse: %v", err)
	}
	if cfg.Format != "md" || !cfg.IncludeWorking {
		t.Errorf("sample config should restate defaults, got %+v", cfg)
	}
	if !strings.Contains(sample, "include_working") {
		t.Error("sample config should document include_working")
	}
}
