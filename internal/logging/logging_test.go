package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{" WARN ", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"Error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in, zapcore.InfoLevel); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewJSONConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "info", Console: &buf})
	logger.Debug("hidden")
	logger.Info("device selected", zap.String("name", "Test GPU"))
	_ = logger.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("console output is not JSON: %v", err)
	}
	if entry["msg"] != "device selected" || entry["name"] != "Test GPU" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNewDevelopmentDefaultsToDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Development: true, Console: &buf})
	logger.Debug("layout verified")
	_ = logger.Sync()
	if !strings.Contains(buf.String(), "layout verified") {
		t.Errorf("debug entry missing from %q", buf.String())
	}
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vk.log")
	logger := New(Options{Console: &bytes.Buffer{}, File: path})
	logger.Warn("swapchain out of date")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "swapchain out of date") {
		t.Errorf("file contents = %q", data)
	}
}
