package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"VKINFO_FORMAT", "VKINFO_LAYERS", "VKINFO_API_VERSION", "VKCLEAR_WIDTH", "VKINFO_DEV_MODE"} {
		t.Setenv(k, "")
	}
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != FormatText || cfg.APIMajor != 1 || cfg.APIMinor != 0 {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Width != 800 || cfg.Height != 600 || cfg.Frames != 120 {
		t.Errorf("vkclear defaults = %dx%d/%d", cfg.Width, cfg.Height, cfg.Frames)
	}
	if len(cfg.Layers) != 0 || cfg.DevMode {
		t.Errorf("unexpected layers %v / dev mode %v", cfg.Layers, cfg.DevMode)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("VKINFO_FORMAT", "YAML")
	t.Setenv("VKINFO_LAYERS", "VK_LAYER_KHRONOS_validation, ,VK_LAYER_MESA_overlay")
	t.Setenv("VKINFO_API_VERSION", "1.3")
	t.Setenv("VKCLEAR_WIDTH", "not-a-number")
	t.Setenv("VKINFO_DEV_MODE", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != FormatYAML {
		t.Errorf("format = %q", cfg.Format)
	}
	if len(cfg.Layers) != 2 || cfg.Layers[1] != "VK_LAYER_MESA_overlay" {
		t.Errorf("layers = %q", cfg.Layers)
	}
	if cfg.APIMajor != 1 || cfg.APIMinor != 3 {
		t.Errorf("api version = %d.%d", cfg.APIMajor, cfg.APIMinor)
	}
	if cfg.Width != 800 {
		t.Errorf("unparsable width should fall back, got %d", cfg.Width)
	}
	if !cfg.DevMode {
		t.Error("dev mode not read")
	}
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("VKCLEAR_FRAMES", "")
	os.Unsetenv("VKCLEAR_FRAMES")
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("VKCLEAR_FRAMES=7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Frames != 7 {
		t.Errorf("frames = %d, want 7", cfg.Frames)
	}
}

func TestLoadRejectsBadFormat(t *testing.T) {
	t.Setenv("VKINFO_FORMAT", "xml")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("err = %v, want ErrInvalidFormat", err)
	}
}

func TestParseAPIVersion(t *testing.T) {
	tests := []struct {
		in           string
		major, minor uint32
		wantErr      bool
	}{
		{"1.0", 1, 0, false},
		{" 1.4 ", 1, 4, false},
		{"1", 0, 0, true},
		{"a.b", 0, 0, true},
		{"1.2000", 0, 0, true},
	}
	for _, tt := range tests {
		major, minor, err := ParseAPIVersion(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidAPIVersion) {
				t.Errorf("%q: err = %v", tt.in, err)
			}
			continue
		}
		if err != nil || major != tt.major || minor != tt.minor {
			t.Errorf("%q = %d.%d, %v", tt.in, major, minor, err)
		}
	}
}
