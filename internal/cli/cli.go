package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/vk/cubetally/internal/app"
	"github.com/vk/cubetally/internal/settings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// envConfig is the environment layer; envDefault tags are the built-in defaults.
type envConfig struct {
	Input     string `env:"CUBETALLY_INPUT"`
	Config    string `env:"CUBETALLY_CONFIG"`
	Output    string `env:"CUBETALLY_OUTPUT" envDefault:"text"`
	Records   bool   `env:"CUBETALLY_RECORDS" envDefault:"false"`
	Archive   string `env:"CUBETALLY_ARCHIVE"`
	LogFormat string `env:"CUBETALLY_LOG_FORMAT" envDefault:"text"`
	LogLevel  string `env:"CUBETALLY_LOG_LEVEL" envDefault:"info"`
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var defaults envConfig
	if err := env.Parse(&defaults); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("parse env: %v", err)}
	}

	flagSet := flag.NewFlagSet("cubetally", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
cubetally - Totals for cube-draw game records.

Usage:
  cubetally [options] [INPUT_PATH]

Arguments:
  INPUT_PATH
    Path to a game record file, or a directory of .txt record files.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", defaults.Input, "Path to the input file or directory.")
	iFlag := flagSet.String("i", "", "Path to the input file or directory (shorthand).")
	configFlag := flagSet.String("config", defaults.Config, "Path to an HCL settings file.")
	outputFlag := flagSet.String("output", defaults.Output, "Report format. Options: 'text', 'json' or 'hcl'.")
	recordsFlag := flagSet.Bool("records", defaults.Records, "Include every parsed record in the report.")
	archiveFlag := flagSet.String("archive", defaults.Archive, "Path to a SQLite database to archive the run into.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	path := *inputFlag
	if *iFlag != "" {
		path = *iFlag
		explicit["input"] = true
	} else if flagSet.NArg() > 0 && !explicit["input"] {
		path = flagSet.Arg(0)
		explicit["input"] = true
	}

	cfg := app.Config{
		InputPath:   path,
		Output:      *outputFlag,
		Records:     *recordsFlag,
		ArchivePath: *archiveFlag,
		LogFormat:   *logFormatFlag,
		LogLevel:    *logLevelFlag,
	}

	if *configFlag != "" {
		file, err := settings.Load(context.Background(), *configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		applySettings(&cfg, file, explicit)
		slog.Debug("Settings file applied.", "path", *configFlag)
	}

	if cfg.InputPath == "" {
		slog.Debug("No input path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	cfg.Output = strings.ToLower(cfg.Output)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// applySettings copies every attribute set in file onto cfg unless the
// matching flag was given explicitly.
func applySettings(cfg *app.Config, file *settings.File, explicit map[string]bool) {
	if file.Input != nil && !explicit["input"] {
		cfg.InputPath = *file.Input
	}
	if file.Output != nil && !explicit["output"] {
		cfg.Output = *file.Output
	}
	if file.Records != nil && !explicit["records"] {
		cfg.Records = *file.Records
	}
	if file.Archive != nil && !explicit["archive"] {
		cfg.ArchivePath = *file.Archive
	}
	if file.LogFormat != nil && !explicit["log-format"] {
		cfg.LogFormat = *file.LogFormat
	}
	if file.LogLevel != nil && !explicit["log-level"] {
		cfg.LogLevel = *file.LogLevel
	}
}
