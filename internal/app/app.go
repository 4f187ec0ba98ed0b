package app

import (
	"io"
	"log/slog"
)

// App encapsulates the application's streams, logger and configuration.
type App struct {
	in     io.Reader
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. Program output goes
// to outW and log records to logW, so the two never interleave on one
// stream.
func NewApp(in io.Reader, outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		in:     in,
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
