// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kfe/internal/logger"
	"github.com/katalvlaran/kfe/optimize"
	"github.com/katalvlaran/kfe/pipeline"
)

// Shape is the training grid every image is resampled to.
type Shape struct {
	Classes      int `yaml:"classes"`
	Features     int `yaml:"features"`     // rows (image height)
	Realizations int `yaml:"realizations"` // columns (image width)
}

// Optimize describes the candidate grid as ranges.
type Optimize struct {
	DeltaMin         int     `yaml:"delta_min"`
	DeltaMax         int     `yaml:"delta_max"`
	DeltaStep        int     `yaml:"delta_step"`
	IncludeZeroDelta bool    `yaml:"include_zero_delta"`
	SelecMin         float64 `yaml:"selec_min"`
	SelecMax         float64 `yaml:"selec_max"`
	SelecStep        float64 `yaml:"selec_step"`
	Tolerance        float64 `yaml:"tolerance"`
}

// Log selects the log level and output format.
type Log struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"` // human-readable instead of JSON lines
}

// Store selects the run archive backend.
type Store struct {
	Kind string `yaml:"kind"` // "memory" or "sqlite"
	Path string `yaml:"path"` // sqlite database file
}

// Config is the full run configuration.
type Config struct {
	Shape    Shape           `yaml:"shape"`
	Params   pipeline.Params `yaml:"params"`
	Optimize Optimize        `yaml:"optimize"`
	Log      Log             `yaml:"log"`
	Store    Store           `yaml:"store"`
}

// Default returns the stock configuration: two classes on a 100×100 grid,
// delta 50, selec 0.5, and the {0} ∪ 25..75 × 0.25..0.75 search grid.
func Default() Config {
	return Config{
		Shape:  Shape{Classes: 2, Features: 100, Realizations: 100},
		Params: pipeline.DefaultParams,
		Optimize: Optimize{
			DeltaMin: 25, DeltaMax: 75, DeltaStep: 1, IncludeZeroDelta: true,
			SelecMin: 0.25, SelecMax: 0.75, SelecStep: 0.01,
			Tolerance: optimize.DefaultTolerance,
		},
		Log:   Log{Level: "info", Console: true},
		Store: Store{Kind: "memory"},
	}
}

// Parse decodes YAML on top of Default and validates the result.
// An empty document yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// Validate checks every section and reports the first problem found.
func (c Config) Validate() error {
	s := c.Shape
	if s.Classes < 2 {
		return invalid("shape.classes %d < 2", s.Classes)
	}
	if s.Features < 1 || s.Realizations < 1 {
		return invalid("shape %dx%d must be positive", s.Features, s.Realizations)
	}
	if err := c.Params.Validate(); err != nil {
		return invalid("params: %v", err)
	}

	o := c.Optimize
	if o.DeltaMin < 0 || o.DeltaMax > pipeline.MaxDelta || o.DeltaMin > o.DeltaMax || o.DeltaStep < 1 {
		return invalid("optimize delta range [%d,%d] step %d", o.DeltaMin, o.DeltaMax, o.DeltaStep)
	}
	if math.IsNaN(o.SelecMin) || math.IsNaN(o.SelecMax) || o.SelecMin < 0 || o.SelecMax > 1 || o.SelecMin > o.SelecMax || !(o.SelecStep > 0) {
		return invalid("optimize selec range [%g,%g] step %g", o.SelecMin, o.SelecMax, o.SelecStep)
	}
	if math.IsNaN(o.Tolerance) || o.Tolerance < 0 {
		return invalid("optimize.tolerance %g", o.Tolerance)
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return invalid("log: %v", err)
	}
	switch c.Store.Kind {
	case "memory":
	case "sqlite":
		if c.Store.Path == "" {
			return invalid("store.path is required for sqlite")
		}
	default:
		return invalid("store.kind %q", c.Store.Kind)
	}

	return nil
}

// Settings expands the optimize ranges into a candidate grid joined with
// the current parameters.
func (c Config) Settings(current pipeline.Params) optimize.Settings {
	o := c.Optimize
	deltas := optimize.DeltaRange(o.DeltaMin, o.DeltaMax, o.DeltaStep)
	if o.IncludeZeroDelta {
		deltas = append([]int{0}, deltas...)
	}
	s := optimize.Settings{
		DeltaCandidates: deltas,
		SelecCandidates: optimize.SelecRange(o.SelecMin, o.SelecMax, o.SelecStep),
		Tolerance:       o.Tolerance,
	}

	return s.Normalize(current)
}
