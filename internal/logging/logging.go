// Package logging builds the leveled console logger used across daily.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/daily/internal/config"
)

const prefix = "daily"

// New returns a text logger writing to w at the configured level.
func New(cfg config.LogConfig, w io.Writer) *log.Logger {
	level, err := log.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          prefix,
	})
}

// Discard is a logger that drops everything. Tests and embedders use it.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ForTUI returns a logger that stays off the terminal while the TUI runs:
// it appends to cfg.File with timestamps, or discards output when no file
// is configured. The returned closer must be closed on exit.
func ForTUI(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	if strings.TrimSpace(cfg.File) == "" {
		return Discard(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := New(cfg, f)
	logger.SetReportTimestamp(true)
	return logger, f, nil
}
