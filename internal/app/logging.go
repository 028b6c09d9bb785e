package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/five82/plantview/internal/prefs"
)

// newLogger builds the text logger. With a path, logs are appended to that
// file; otherwise they go to fallback, or nowhere when fallback is nil.
func newLogger(path string, debug bool, fallback io.Writer) (*slog.Logger, io.Closer, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if path == "" {
		if fallback == nil {
			return slog.New(slog.DiscardHandler), nil, nil
		}
		return slog.New(slog.NewTextHandler(fallback, opts)), nil, nil
	}

	resolved, err := prefs.ExpandPath(path)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(resolved, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), f, nil
}
