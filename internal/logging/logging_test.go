package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"

	"tasktrack/internal/config"
)

func TestNew_DefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&config.Config{}, &buf)

	if log.Logger.GetLevel() != DefaultLevel {
		t.Errorf("expected level %s, got %s", DefaultLevel, log.Logger.GetLevel())
	}
	log.Warn("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected warn to be suppressed, got %q", buf.String())
	}
}

func TestNew_DebugOverridesSettings(t *testing.T) {
	cfg := &config.Config{Debug: true, Settings: config.Settings{LogLevel: "error"}}
	log := New(cfg, &bytes.Buffer{})

	if log.Logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("expected debug level, got %s", log.Logger.GetLevel())
	}
}

func TestNew_JSONFormatFields(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Settings: config.Settings{LogLevel: "info", LogFormat: "json"}}
	New(cfg, &buf).Info("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "hello" {
		t.Errorf("unexpected message: %v", entry["message"])
	}
	if entry["app"] != config.AppName {
		t.Errorf("unexpected app: %v", entry["app"])
	}
	if id, _ := entry["run_id"].(string); len(id) != 36 {
		t.Errorf("expected uuid run_id, got %v", entry["run_id"])
	}
}
