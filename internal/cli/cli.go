package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/plotgrid/internal/config"
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

// Parse processes command-line arguments. It returns a validated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Flags given explicitly override values from the -config file.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("plots", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
plots - price garden plot fences by perimeter and by side count.

Usage:
  plots [options] [INPUT_PATH]

Arguments:
  INPUT_PATH
    Text file with one grid row per line, one plot label per character.

Options:
`)
		flagSet.PrintDefaults()
	}

	def := config.Default()
	configFlag := flagSet.String("config", "", "Path to an HCL config file.")
	inputFlag := flagSet.String("input", "", "Path to the grid file.")
	iFlag := flagSet.String("i", "", "Path to the grid file (shorthand).")
	strategyFlag := flagSet.String("strategy", def.Strategy, "Region strategy. Options: 'flood' or 'merge'.")
	workersFlag := flagSet.Int("workers", def.Workers, "Concurrent region measurements. 0 uses GOMAXPROCS.")
	reportFlag := flagSet.Bool("report", def.Report, "Print one line per region.")
	viewFlag := flagSet.Bool("view", def.View, "Show the colored region map in the terminal.")
	seedFlag := flagSet.Int64("seed", def.Seed, "Palette seed for -view.")
	logFormatFlag := flagSet.String("log-format", def.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", def.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	cfg := &def
	if *configFlag != "" {
		loaded, err := config.LoadFile(*configFlag, def)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
		slog.Debug("Config file loaded.", "path", *configFlag)
	}

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["strategy"] {
		cfg.Strategy = *strategyFlag
	}
	if set["workers"] {
		cfg.Workers = *workersFlag
	}
	if set["report"] {
		cfg.Report = *reportFlag
	}
	if set["view"] {
		cfg.View = *viewFlag
	}
	if set["seed"] {
		cfg.Seed = *seedFlag
	}
	if set["log-format"] {
		cfg.LogFormat = *logFormatFlag
	}
	if set["log-level"] {
		cfg.LogLevel = *logLevelFlag
	}

	switch {
	case *inputFlag != "":
		cfg.Input = *inputFlag
	case *iFlag != "":
		cfg.Input = *iFlag
	case flagSet.NArg() > 0:
		cfg.Input = flagSet.Arg(0)
	}
	slog.Debug("Input path determined.", "path", cfg.Input)

	if cfg.Input == "" {
		slog.Debug("No input path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
