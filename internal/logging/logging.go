// Package logging builds the zap loggers used by the command-line tools.
package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation defaults for the optional log file.
const (
	DefaultMaxSizeMB  = 20
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 14
)

type Options struct {
	// Level is one of debug, info, warn or error. Anything else means info,
	// or debug in development mode.
	Level string

	// Development switches the console to a colored human-readable encoder.
	// Otherwise the console gets JSON.
	Development bool

	// File, when set, receives a JSON copy of every entry and is rotated by
	// size.
	File string

	// Console defaults to stderr.
	Console io.Writer
}

// New builds a logger that writes to the console and, if configured, to a
// rotated file.
func New(opts Options) *zap.Logger {
	def := zapcore.InfoLevel
	if opts.Development {
		def = zapcore.DebugLevel
	}
	level := ParseLevel(opts.Level, def)

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	var consoleEnc zapcore.Encoder
	if opts.Development {
		consoleEnc = zapcore.NewConsoleEncoder(consoleEncoderConfig())
	} else {
		consoleEnc = zapcore.NewJSONEncoder(encoderConfig())
	}
	cores := []zapcore.Core{zapcore.NewCore(consoleEnc, zapcore.AddSync(console), level)}

	if opts.File != "" {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig()),
			NewFileWriter(opts.File),
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller())
}

// NewFileWriter returns a size-rotated, compressed log file.
func NewFileWriter(path string) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAgeDays,
		Compress:   true,
	})
}

// ParseLevel parses a level name case-insensitively, returning def for
// anything unrecognized.
func ParseLevel(s string, def zapcore.Level) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return def
	}
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	return cfg
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	return cfg
}
