// Package log builds the zap loggers used by the command line and the
// wazero adapter.
package log

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option configures a logger built by New.
type Option func(*config)

type config struct {
	level       zapcore.Level
	development bool
	encoding    string
}

func defaultConfig() config {
	return config{
		level:    zapcore.InfoLevel,
		encoding: "console",
	}
}

// WithLevel sets the minimum level to report.
func WithLevel(level zapcore.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithDevelopment switches to zap's development settings: stack traces on
// warnings and panics on DPanic.
func WithDevelopment(enabled bool) Option {
	return func(c *config) {
		c.development = enabled
	}
}

// WithJSON encodes entries as JSON instead of console text.
func WithJSON(enabled bool) Option {
	return func(c *config) {
		if enabled {
			c.encoding = "json"
		} else {
			c.encoding = "console"
		}
	}
}

// New builds a logger writing to stderr.
func New(opts ...Option) (*zap.Logger, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	zc := zap.NewProductionConfig()
	if cfg.development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.level)
	zc.Encoding = cfg.encoding
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	if cfg.encoding == "console" {
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// ParseLevel parses a level name such as "debug" or "warn".
func ParseLevel(s string) (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
