package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/plotgrid/region"
)

// ErrInvalidConfig indicates a configuration value outside its allowed set.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved run configuration.
type Config struct {
	Input     string `hcl:"input,optional"`
	Strategy  string `hcl:"strategy,optional"`
	Workers   int    `hcl:"workers,optional"`
	Report    bool   `hcl:"report,optional"`
	View      bool   `hcl:"view,optional"`
	Seed      int64  `hcl:"seed,optional"`
	LogLevel  string `hcl:"log_level,optional"`
	LogFormat string `hcl:"log_format,optional"`
}

// Default returns the configuration used when neither a file nor flags
// set a value.
func Default() Config {
	return Config{
		Strategy:  region.FloodFill.String(),
		Workers:   0,
		Seed:      42,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadFile decodes an HCL file on top of base. Attributes absent from the
// file keep base's values.
func LoadFile(path string, base Config) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	cfg := base
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}
	return &cfg, nil
}

// Validate checks every enumerated or bounded value.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input path is required", ErrInvalidConfig)
	}
	if _, err := region.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: strategy must be 'flood' or 'merge', got %q", ErrInvalidConfig, c.Strategy)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative (%d)", ErrInvalidConfig, c.Workers)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level must be 'debug', 'info', 'warn', or 'error'", ErrInvalidConfig)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log_format must be 'text' or 'json'", ErrInvalidConfig)
	}
	return nil
}

// NewLogger creates a slog.Logger for the configured level and format. It
// does not set the global logger.
func (c *Config) NewLogger(outW io.Writer) *slog.Logger {
	var level slog.Level
	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(outW, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(outW, handlerOpts))
}
