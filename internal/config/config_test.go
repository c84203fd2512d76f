package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_NoSettingsFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dir != dir {
		t.Errorf("expected dir %q, got %q", dir, cfg.Dir)
	}
	if cfg.DataDir() != filepath.Join(dir, "data") {
		t.Errorf("unexpected data dir: %s", cfg.DataDir())
	}
}

func TestNew_LoadsSettings(t *testing.T) {
	dir := t.TempDir()
	content := `data_dir = "store"
codec = "yaml"
log_level = "info"
log_format = "json"
`
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Settings.Codec != "yaml" || cfg.Settings.LogLevel != "info" || cfg.Settings.LogFormat != "json" {
		t.Errorf("unexpected settings: %+v", cfg.Settings)
	}
	if cfg.DataDir() != filepath.Join(dir, "store") {
		t.Errorf("unexpected data dir: %s", cfg.DataDir())
	}
}

func TestNew_AbsoluteDataDir(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "elsewhere")
	content := "data_dir = " + `"` + filepath.ToSlash(abs) + `"` + "\n"
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataDir() != filepath.FromSlash(filepath.ToSlash(abs)) {
		t.Errorf("expected %s, got %s", abs, cfg.DataDir())
	}
}

func TestNew_InvalidSettings(t *testing.T) {
	for name, content := range map[string]string{
		"malformed":   "codec = \n",
		"unknown key": "colour = \"blue\"\n",
	} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte(content), 0600); err != nil {
				t.Fatalf("failed to write settings: %v", err)
			}
			_, err := New(dir)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), SettingsFile) {
				t.Errorf("expected error to mention %s, got %v", SettingsFile, err)
			}
		})
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultConfigDir(); got != filepath.Join("/tmp/xdg", AppName) {
		t.Errorf("unexpected dir: %s", got)
	}
}
