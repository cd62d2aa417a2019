// Package logging builds the zap logger used across the application.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where logs go.
type Options struct {
	// File receives JSON logs when set.
	File string

	// Level is a zap level name. Empty means info.
	Level string

	// Stderr logs to standard error when no file is set. The TUI leaves it
	// off because it owns the terminal.
	Stderr bool
}

// New returns a logger for opts. With neither a file nor Stderr it returns
// a no-op logger.
func New(opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var config zap.Config
	switch {
	case opts.File != "":
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{opts.File}
		config.ErrorOutputPaths = []string{opts.File}
	case opts.Stderr:
		config = zap.NewDevelopmentConfig()
		config.DisableStacktrace = true
		config.OutputPaths = []string{"stderr"}
		config.ErrorOutputPaths = []string{"stderr"}
	default:
		return zap.NewNop(), nil
	}
	config.Level = zap.NewAtomicLevelAt(level)

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
