package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	t.Setenv(RootEnv, "")

	cfg := NewDefaultConfig()
	if err := Load(filepath.Join(t.TempDir(), "absent.yaml"), cfg); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Root != DefaultRoot {
		t.Errorf("Root = %q, want %q", cfg.Root, DefaultRoot)
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Errorf("LogLevel = %v, want WARN", cfg.LogLevel)
	}
}

func TestLoad_FileValues(t *testing.T) {
	t.Setenv(RootEnv, "")
	t.Setenv("ARCHIVE_HOME", "/data")

	path := writeConfig(t, "root: ${ARCHIVE_HOME}/interviews\neditor: subl\nlog_level: debug\n")
	cfg := NewDefaultConfig()
	if err := Load(path, cfg); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Root != "/data/interviews" {
		t.Errorf("Root = %q", cfg.Root)
	}
	if cfg.Editor != "subl" {
		t.Errorf("Editor = %q", cfg.Editor)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
}

func TestLoad_EnvOverridesRoot(t *testing.T) {
	t.Setenv(RootEnv, "/from/env")

	path := writeConfig(t, "root: /from/file\n")
	cfg := NewDefaultConfig()
	if err := Load(path, cfg); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Root != "/from/env" {
		t.Errorf("Root = %q, want /from/env", cfg.Root)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(RootEnv, "")

	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "empty root",
			content: "root: \"\"\n",
			errMsg:  "validation failed",
		},
		{
			name:    "bad yaml",
			content: "root: [unterminated\n",
			errMsg:  "failed to parse",
		},
		{
			name:    "unknown level",
			content: "log_level: chatty\n",
			errMsg:  "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Load(writeConfig(t, tt.content), NewDefaultConfig())
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %v", tt.errMsg, err)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(ConfigEnv, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultPath(); got != filepath.Join("/xdg", "interview", "config.yaml") {
		t.Errorf("DefaultPath = %q", got)
	}

	t.Setenv(ConfigEnv, "/explicit.yaml")
	if got := DefaultPath(); got != "/explicit.yaml" {
		t.Errorf("DefaultPath = %q", got)
	}
}
