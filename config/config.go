// Package config loads the YAML configuration of the idsearch command and
// builds the structured logger from it.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/idsearch/ids"
	"github.com/katalvlaran/idsearch/render"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the configuration file.
type Config struct {
	// MaxLimit caps the number of bounds; the tree grows as 2^MaxLimit.
	MaxLimit       int       `yaml:"max_limit" validate:"gte=1,lte=62"`
	PruneOvershoot bool      `yaml:"prune_overshoot"`
	Output         Output    `yaml:"output"`
	Log            Log       `yaml:"log"`
	Telemetry      Telemetry `yaml:"telemetry"`
}

// Output selects what the report prints.
type Output struct {
	Plain        bool `yaml:"plain"`
	ShowTree     bool `yaml:"show_tree"`
	ShowPaths    bool `yaml:"show_paths"`
	MaxTreeNodes int  `yaml:"max_tree_nodes" validate:"gte=0"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Telemetry toggles the metrics dump and the stdout trace exporter.
type Telemetry struct {
	Metrics bool `yaml:"metrics"`
	Trace   bool `yaml:"trace"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		MaxLimit: ids.DefaultMaxLimit,
		Output: Output{
			ShowTree:     true,
			ShowPaths:    true,
			MaxTreeNodes: render.DefaultMaxTreeNodes,
		},
		Log: Log{Level: "warn", Format: "text"},
	}
}

var validate = validator.New()

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Load reads path over the defaults; keys absent from the file keep their
// default values. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ReportOptions converts the output section for render.NewReporter.
func (c Config) ReportOptions() render.ReportOptions {
	return render.ReportOptions{
		ShowTree:     c.Output.ShowTree,
		ShowPaths:    c.Output.ShowPaths,
		MaxTreeNodes: c.Output.MaxTreeNodes,
	}
}

// NewLogger builds a slog.Logger writing to w according to the log section.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(c.Log.Level)}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelWarn
	}

	return lvl
}
