package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vk/cubetally/internal/report"
)

// InputExtension selects the files read when the input path is a directory.
const InputExtension = ".txt"

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath   string // file, or directory of *.txt files
	Output      string // report format
	Records     bool   // include per-record lines in the report
	ArchivePath string // SQLite archive, empty to disable

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if !slices.Contains(report.Formats, cfg.Output) {
		return nil, fmt.Errorf("invalid output: must be one of %v", report.Formats)
	}
	if !slices.Contains(logLevels, cfg.LogLevel) {
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	if !slices.Contains(logFormats, cfg.LogFormat) {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}
	return &cfg, nil
}
