// Package logging configures the process-wide slog logger. The terminal
// belongs to tview once the app starts, so log output goes to a file
// instead of stderr.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
)

// Setup opens (or creates) the log file and installs a tint handler as the
// default slog logger. The returned func closes the file and should be
// deferred by the caller.
func Setup(path, level string) (func() error, error) {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to make log dir %v: %w", filepath.Dir(path), err)
	}

	//nolint:gosec
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %v: %w", path, err)
	}

	handler := tint.NewHandler(f, &tint.Options{
		Level:      parseLevel(level),
		TimeFormat: time.RFC3339,
		NoColor:    true,
	})

	slog.SetDefault(slog.New(handler))

	return f.Close, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
