// Package config loads lvopt settings from YAML.
//
// Config file locations (priority order):
//  1. $LVOPT_CONFIG
//  2. ./lvopt.yaml
//
// Without a file DefaultConfig is used. LVOPT_LOG_LEVEL and LVOPT_LOG_FORMAT
// override the log section after loading.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvopt/outcome"
	"github.com/katalvlaran/lvopt/solver"
)

const (
	// EnvConfigPath names the variable holding an explicit config path.
	EnvConfigPath = "LVOPT_CONFIG"

	// EnvLogLevel overrides Log.Level.
	EnvLogLevel = "LVOPT_LOG_LEVEL"

	// EnvLogFormat overrides Log.Format.
	EnvLogFormat = "LVOPT_LOG_FORMAT"

	// ConfigFileName is looked up in the working directory.
	ConfigFileName = "lvopt.yaml"
)

// ErrBadLogSetting indicates an unknown log level or format.
var ErrBadLogSetting = errors.New("config: unknown log level or format")

// Config is the full settings tree.
type Config struct {
	Solver             SolverConfig  `yaml:"solver"`
	Display            DisplayConfig `yaml:"display"`
	Log                LogConfig     `yaml:"log"`
	VerifyWithDijkstra bool          `yaml:"verify_with_dijkstra"`
	Metrics            bool          `yaml:"metrics"`
}

// SolverConfig tunes the LP/MIP adapter.
type SolverConfig struct {
	Tolerance            float64 `yaml:"tolerance"`
	IntegralityTolerance float64 `yaml:"integrality_tolerance"`
	MaxNodes             int     `yaml:"max_nodes"`
	IIS                  *bool   `yaml:"iis"`
}

// DisplayConfig controls how outcomes are printed.
type DisplayConfig struct {
	ZeroEpsilon float64 `yaml:"zero_epsilon"`
	Precision   *int    `yaml:"precision"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// DefaultConfig returns the settings used when no file is found.
func DefaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()

	return c
}

// Load finds and loads the config file, or returns defaults if none is found.
// The returned path is empty when defaults were used.
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		c := DefaultConfig()
		c.applyEnv()

		return c, "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	cfg.applyEnv()

	return &cfg, path, nil
}

// FindConfigPath returns the first existing config file, or "".
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" && fileExists(path) {
		return path
	}
	if fileExists(ConfigFileName) {
		return ConfigFileName
	}

	return ""
}

// Save writes c to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Solver.Tolerance <= 0 {
		c.Solver.Tolerance = solver.DefaultTolerance
	}
	if c.Solver.IntegralityTolerance <= 0 || c.Solver.IntegralityTolerance >= 0.5 {
		c.Solver.IntegralityTolerance = solver.DefaultIntegralityTolerance
	}
	if c.Solver.MaxNodes <= 0 {
		c.Solver.MaxNodes = solver.DefaultMaxNodes
	}
	if c.Solver.IIS == nil {
		on := true
		c.Solver.IIS = &on
	}
	if c.Display.ZeroEpsilon <= 0 {
		c.Display.ZeroEpsilon = outcome.DefaultZeroEpsilon
	}
	if c.Display.Precision == nil || *c.Display.Precision < 0 {
		p := outcome.DefaultPrecision
		c.Display.Precision = &p
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = strings.ToLower(v)
	}
}

// IISEnabled reports whether infeasible outcomes get a conflict set.
func (c *Config) IISEnabled() bool {
	return c.Solver.IIS == nil || *c.Solver.IIS
}

// SolverOptions converts the solver section into adapter options.
func (c *Config) SolverOptions(logger *slog.Logger) []solver.Option {
	opts := []solver.Option{
		solver.WithTolerance(c.Solver.Tolerance),
		solver.WithIntegralityTolerance(c.Solver.IntegralityTolerance),
		solver.WithMaxNodes(c.Solver.MaxNodes),
	}
	if logger != nil {
		opts = append(opts, solver.WithLogger(logger))
	}

	return opts
}

// OutcomeOptions converts the display section into interpreter options.
func (c *Config) OutcomeOptions() []outcome.Option {
	opts := []outcome.Option{outcome.WithZeroEpsilon(c.Display.ZeroEpsilon)}
	if c.Display.Precision != nil {
		opts = append(opts, outcome.WithPrecision(*c.Display.Precision))
	}

	return opts
}

// Logger builds a slog.Logger writing to w per the log section.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch c.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("%w: level %q", ErrBadLogSetting, c.Log.Level)
	}

	ho := &slog.HandlerOptions{Level: level}
	switch c.Log.Format {
	case "text":
		return slog.New(slog.NewTextHandler(w, ho)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, ho)), nil
	}

	return nil, fmt.Errorf("%w: format %q", ErrBadLogSetting, c.Log.Format)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}
