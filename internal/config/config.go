// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the latmio command: the
// rewiring parameters, ensemble size and output selection. Files are TOML
// (.toml) or YAML (.yaml, .yml); fields absent from a file keep their
// Default value, and unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/latmio/matio"
	"github.com/katalvlaran/latmio/matrix"
	"github.com/katalvlaran/latmio/rewire"
)

// ErrInvalidConfig marks a configuration that cannot drive a run.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults for the command line. The library default for MaxRetries is
// unbounded; the command caps it so a saturated input fails instead of
// spinning.
const (
	DefaultIterations = 10
	DefaultSeed       = 1
	DefaultMaxRetries = 1_000_000
)

// Config is the full run configuration.
type Config struct {
	Iterations     int           `toml:"iterations" yaml:"iterations"`
	Seed           int64         `toml:"seed" yaml:"seed"`
	MaxRetries     int           `toml:"max_retries" yaml:"max_retries"`
	Epsilon        float64       `toml:"epsilon" yaml:"epsilon"`
	Verify         bool          `toml:"verify" yaml:"verify"`
	SkipValidation bool          `toml:"skip_validation" yaml:"skip_validation"`
	Timeout        time.Duration `toml:"timeout" yaml:"timeout"`

	Ensemble Ensemble `toml:"ensemble" yaml:"ensemble"`
	Output   Output   `toml:"output" yaml:"output"`
}

// Ensemble sizes a multi-surrogate run. Count 1 is a single Latticize call.
type Ensemble struct {
	Count   int `toml:"count" yaml:"count"`
	Workers int `toml:"workers" yaml:"workers"`
}

// Output selects the result encoding. An empty Format follows the output
// path extension; an empty Report disables the JSON run report.
type Output struct {
	Format string `toml:"format" yaml:"format"`
	Report string `toml:"report" yaml:"report"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Iterations: DefaultIterations,
		Seed:       DefaultSeed,
		MaxRetries: DefaultMaxRetries,
		Epsilon:    matrix.DefaultEpsilon,
		Ensemble:   Ensemble{Count: 1, Workers: rewire.DefaultWorkers},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("config: %s: unknown key %q: %w", path, undecoded[0].String(), ErrInvalidConfig)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("config: %s: %w: %v", path, ErrInvalidConfig, err)
		}
	default:
		return cfg, fmt.Errorf("config: %s: unsupported extension %q: %w", path, ext, ErrInvalidConfig)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.Iterations < 0:
		return fmt.Errorf("config: iterations=%d: %w", c.Iterations, ErrInvalidConfig)
	case c.MaxRetries < 0:
		return fmt.Errorf("config: max_retries=%d: %w", c.MaxRetries, ErrInvalidConfig)
	case c.Epsilon < 0 || math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0):
		return fmt.Errorf("config: epsilon=%g: %w", c.Epsilon, ErrInvalidConfig)
	case c.Timeout < 0:
		return fmt.Errorf("config: timeout=%s: %w", c.Timeout, ErrInvalidConfig)
	case c.Ensemble.Count < 1:
		return fmt.Errorf("config: ensemble.count=%d: %w", c.Ensemble.Count, ErrInvalidConfig)
	case c.Ensemble.Workers < 1:
		return fmt.Errorf("config: ensemble.workers=%d: %w", c.Ensemble.Workers, ErrInvalidConfig)
	}
	if c.Output.Format != "" {
		if _, err := matio.ParseFormat(c.Output.Format); err != nil {
			return fmt.Errorf("config: output.format: %w: %v", ErrInvalidConfig, err)
		}
	}

	return nil
}

// RewireOptions maps c onto rewire options. Logger and context are left
// to the caller. c must have passed Validate; the option constructors panic
// on out-of-range values.
func (c Config) RewireOptions() []rewire.Option {
	opts := []rewire.Option{
		rewire.WithSeed(c.Seed),
		rewire.WithMaxRetries(c.MaxRetries),
		rewire.WithEpsilon(c.Epsilon),
		rewire.WithWorkers(c.Ensemble.Workers),
	}
	if c.Verify {
		opts = append(opts, rewire.WithVerify())
	}
	if c.SkipValidation {
		opts = append(opts, rewire.WithSkipValidation())
	}

	return opts
}
