package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/meenmo/finlib/returns"
	"github.com/meenmo/finlib/utils"
)

// ErrInvalid marks a configuration that cannot drive a solver.
var ErrInvalid = errors.New("config: invalid")

// Config holds solver parameters and the defaults the command line tools
// apply when an input omits them.
type Config struct {
	// Method is the IRR search method: bisection, fixed-step or newton.
	Method string `toml:"method" yaml:"method"`

	// Tolerance is the accepted |NPV| at the reported rate.
	Tolerance float64 `toml:"tolerance" yaml:"tolerance"`

	// InitialRate seeds the fixed-step and Newton searches.
	InitialRate float64 `toml:"initial_rate" yaml:"initial_rate"`

	// Step is the fixed-step increment. 0.01 moves one percentage point per iteration.
	Step float64 `toml:"step" yaml:"step"`

	// MaxIterations bounds every search.
	MaxIterations int `toml:"max_iterations" yaml:"max_iterations"`

	// BracketLow and BracketHigh are the starting bisection bracket.
	BracketLow  float64 `toml:"bracket_low" yaml:"bracket_low"`
	BracketHigh float64 `toml:"bracket_high" yaml:"bracket_high"`

	// DayCount is the basis for dated cash flows.
	DayCount string `toml:"day_count" yaml:"day_count"`

	// DecimalPlaces is the rounding of funding cost ratios.
	DecimalPlaces int32 `toml:"decimal_places" yaml:"decimal_places"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	o := returns.DefaultOptions()
	return Config{
		Method:        o.Method.String(),
		Tolerance:     o.Tolerance,
		InitialRate:   o.InitialRate,
		Step:          o.Step,
		MaxIterations: o.MaxIterations,
		BracketLow:    o.Low,
		BracketHigh:   o.High,
		DayCount:      string(utils.Act365F),
		DecimalPlaces: 6,
	}
}

// Load reads a TOML (.toml) or YAML (.yaml, .yml) file. Keys absent from the
// file keep their DefaultConfig value.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("config: unsupported file type %q: %w", ext, ErrInvalid)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every field that would otherwise fail later in a solver.
func (c Config) Validate() error {
	opts, err := c.SolverOptions()
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("config: %w: %w", ErrInvalid, err)
	}
	if _, err := utils.ParseDayCount(c.DayCount); err != nil {
		return fmt.Errorf("config: %w: %w", ErrInvalid, err)
	}
	if c.DecimalPlaces < 0 {
		return fmt.Errorf("config: decimal places must be non-negative, got %d: %w", c.DecimalPlaces, ErrInvalid)
	}
	return nil
}

// SolverOptions converts the solver fields to returns.Options.
func (c Config) SolverOptions() (returns.Options, error) {
	m, err := returns.ParseMethod(c.Method)
	if err != nil {
		return returns.Options{}, fmt.Errorf("config: %w: %w", ErrInvalid, err)
	}
	return returns.Options{
		Method:        m,
		Tolerance:     c.Tolerance,
		InitialRate:   c.InitialRate,
		Step:          c.Step,
		MaxIterations: c.MaxIterations,
		Low:           c.BracketLow,
		High:          c.BracketHigh,
	}, nil
}

// Basis returns the configured day count.
func (c Config) Basis() (utils.DayCount, error) {
	return utils.ParseDayCount(c.DayCount)
}
