package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// New returns a logger writing coloured lines to out.
func New(out io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(NewHandler(out, level, !color.NoColor))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OpenFile returns a logger appending plain lines to path. The caller closes
// the returned file. An empty path selects DefaultFile.
func OpenFile(path string, level slog.Leveler) (*slog.Logger, io.Closer, error) {
	if path == "" {
		p, err := DefaultFile()
		if err != nil {
			return nil, nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(NewHandler(f, level, false)), f, nil
}

// DefaultFile is $XDG_STATE_HOME/quizterm/quizterm.log, falling back to
// ~/.local/state/quizterm/quizterm.log.
func DefaultFile() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "quizterm", "quizterm.log"), nil
}
