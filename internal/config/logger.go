package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger builds the process logger and installs it as slog's default.
func NewLogger(cfg Log) *slog.Logger {
	return newLogger(os.Stdout, cfg)
}

func newLogger(w io.Writer, cfg Log) *slog.Logger {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	formatter := log.TextFormatter
	if cfg.Format == "json" {
		formatter = log.JSONFormatter
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
