// Package config loads the settings shared by the vkinfo and vkclear tools
// from a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalidFormat is returned for an output format other than text or yaml.
var ErrInvalidFormat = errors.New("invalid output format")

// ErrInvalidAPIVersion is returned when an API version is not "major.minor".
var ErrInvalidAPIVersion = errors.New("invalid api version")

type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// Config holds every setting. Zero values are never used directly; Load
// fills defaults.
type Config struct {
	// Report
	Format     Format
	Layers     []string
	Extensions []string
	AppName    string
	APIMajor   uint32
	APIMinor   uint32
	NoColor    bool

	// Logging
	LogLevel string
	LogFile  string
	DevMode  bool

	// vkclear
	Width  int
	Height int
	Frames int
}

// Load reads the optional .env files (missing files are ignored) and then the
// environment. Values already present in the environment win over .env.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := &Config{
		Layers:     parseListEnv("VKINFO_LAYERS"),
		Extensions: parseListEnv("VKINFO_EXTENSIONS"),
		AppName:    getEnvOrDefault("VKINFO_APP_NAME", "vkinfo"),
		NoColor:    parseBoolEnv("VKINFO_NO_COLOR", false),
		LogLevel:   getEnvOrDefault("VKINFO_LOG_LEVEL", "info"),
		LogFile:    os.Getenv("VKINFO_LOG_FILE"),
		DevMode:    parseBoolEnv("VKINFO_DEV_MODE", false),
		Width:      parseIntEnv("VKCLEAR_WIDTH", 800),
		Height:     parseIntEnv("VKCLEAR_HEIGHT", 600),
		Frames:     parseIntEnv("VKCLEAR_FRAMES", 120),
	}

	format, err := ParseFormat(getEnvOrDefault("VKINFO_FORMAT", string(FormatText)))
	if err != nil {
		return nil, err
	}
	cfg.Format = format

	cfg.APIMajor, cfg.APIMinor, err = ParseAPIVersion(getEnvOrDefault("VKINFO_API_VERSION", "1.0"))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseFormat accepts "text" or "yaml" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// ParseAPIVersion parses "1.3" into (1, 3).
func ParseAPIVersion(s string) (major, minor uint32, err error) {
	majStr, minStr, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidAPIVersion, s)
	}
	ma, err := strconv.ParseUint(majStr, 10, 7)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidAPIVersion, s)
	}
	mi, err := strconv.ParseUint(minStr, 10, 10)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidAPIVersion, s)
	}
	return uint32(ma), uint32(mi), nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// parseListEnv splits a comma-separated variable, dropping empty entries.
func parseListEnv(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
