// SPDX-License-Identifier: MIT

package binning

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/binsampler/lattice"
)

// Config is the YAML form of a uniform binning.
//
//	directions:      # local axes in RLU, one per entry (frame columns)
//	  - [1, 0, 0]
//	  - [0, 1, 0]
//	  - [0, 0, 1]
//	axes:
//	  u: [-1, -0.5, 0, 0.5, 1]
//	  v: [-0.1, 0.1]
//	  w: [-0.1, 0.1]
//	  e: [0, 1, 2, 3]
//	spacing_tolerance:
//	  relative: 1e-5
//	  absolute: 1e-8
//
// Omitted directions mean the identity frame.
type Config struct {
	Directions       [][]float64      `json:"directions" yaml:"directions"`
	Axes             Axes             `json:"axes" yaml:"axes"`
	SpacingTolerance *ToleranceConfig `json:"spacing_tolerance,omitempty" yaml:"spacing_tolerance,omitempty"`
}

// ToleranceConfig overrides the uniform-spacing tolerances.
type ToleranceConfig struct {
	Relative float64 `json:"relative" yaml:"relative"`
	Absolute float64 `json:"absolute" yaml:"absolute"`
}

// LoadConfig decodes a Config from YAML. Unknown fields are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %v: %w", err, ErrInvalidConfig)
	}

	return cfg, nil
}

// LoadConfigFile reads and decodes the YAML file at path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfigFile: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}

// DirectionMatrix assembles the frame matrix, columns taken from Directions.
//
// Errors: ErrDimensionMismatch unless Directions is empty or 3×3.
func (c Config) DirectionMatrix() (lattice.Mat3, error) {
	if len(c.Directions) == 0 {
		return lattice.Identity3(), nil
	}
	if len(c.Directions) != 3 {
		return lattice.Mat3{}, fmt.Errorf("directions: %d vectors: %w", len(c.Directions), ErrDimensionMismatch)
	}
	var cols [3]lattice.Vec3
	var err error
	for i, d := range c.Directions {
		if cols[i], err = lattice.Vec3FromSlice(d); err != nil {
			return lattice.Mat3{}, fmt.Errorf("directions[%d]: %w", i, err)
		}
	}

	return lattice.MatFromColumns(cols[0], cols[1], cols[2]), nil
}

// Build validates the configuration and constructs the UniformBinning.
// Options given here are applied after the configured tolerance.
func (c Config) Build(crystal lattice.Crystal, opts ...Option) (*UniformBinning, error) {
	dirs, err := c.DirectionMatrix()
	if err != nil {
		return nil, fmt.Errorf("Config.Build: %w", err)
	}
	var all []Option
	if t := c.SpacingTolerance; t != nil {
		if !validTolerance(t.Relative) || !validTolerance(t.Absolute) {
			return nil, fmt.Errorf("Config.Build: spacing_tolerance (%g, %g): %w",
				t.Relative, t.Absolute, ErrInvalidConfig)
		}
		all = append(all, WithSpacingTolerance(t.Relative, t.Absolute))
	}
	all = append(all, opts...)

	return NewUniformBinning(crystal, dirs, c.Axes, all...)
}
