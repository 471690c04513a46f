package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/zcheck/internal/fsutil"
)

// OpenError reports that the target file could not be acquired. The cause is
// kept for logging only; every cause is reported to the user the same way.
type OpenError struct {
	Path string
	Err  error
}

// Error implements the error interface for OpenError.
func (e *OpenError) Error() string {
	return fmt.Sprintf("could not open %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *OpenError) Unwrap() error {
	return e.Err
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	open   func(path string) (*os.File, error)
}

// NewApp is the constructor for the main application. Results are written to
// outW; diagnostics go to logW through the App's own isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		open:   fsutil.OpenReadOnly,
	}
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
