package app

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultLogLevel  = "error"
	DefaultLogFormat = "text"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	TargetPath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg, fills in logging defaults and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.TargetPath == "" {
		return nil, errors.New("TargetPath is a required configuration field and cannot be empty")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	return &cfg, nil
}
