// SPDX-License-Identifier: MIT
package binning_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/binsampler/binning"
	"github.com/katalvlaran/binsampler/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
directions:
  - [1, 1, 0]
  - [1, -1, 0]
  - [0, 0, 1]
axes:
  u: [-1, -0.5, 0, 0.5, 1]
  v: [-0.1, 0.1]
  w: [-0.2, 0.2]
  e: [0, 1, 2, 3]
spacing_tolerance:
  relative: 1e-4
  absolute: 1e-9
`

func TestLoadConfig(t *testing.T) {
	cfg, err := binning.LoadConfig(strings.NewReader(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{1, 1, 0}, {1, -1, 0}, {0, 0, 1}}, cfg.Directions)
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, cfg.Axes.U)
	assert.Equal(t, []float64{0, 1, 2, 3}, cfg.Axes.E)
	require.NotNil(t, cfg.SpacingTolerance)
	assert.Equal(t, 1e-4, cfg.SpacingTolerance.Relative)

	dirs, err := cfg.DirectionMatrix()
	require.NoError(t, err)
	assert.Equal(t, lattice.Vec3{1, -1, 0}, dirs.Col(1))

	ub, err := cfg.Build(cubic)
	require.NoError(t, err)
	nu, nv, nw := ub.Shape()
	assert.Equal(t, []int{5, 1, 1}, []int{nu, nv, nw})
	assert.Len(t, ub.Energies(), 4)

	c, ok := ub.Center(4, 0, 0)
	require.True(t, ok)
	assert.InDeltaSlice(t, []float64{1, 1, 0}, c[:], 1e-12)
}

func TestLoadConfig_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", "axes:\n  u: [0, 1]\nspacing: 3\n"},
		{"wrong type", "axes:\n  u: one\n"},
		{"malformed", "axes: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := binning.LoadConfig(strings.NewReader(tc.yaml))
			require.ErrorIs(t, err, binning.ErrInvalidConfig)
		})
	}
}

func TestConfig_DirectionMatrix(t *testing.T) {
	dirs, err := binning.Config{}.DirectionMatrix()
	require.NoError(t, err)
	assert.Equal(t, lattice.Identity3(), dirs)

	_, err = binning.Config{Directions: [][]float64{{1, 0, 0}}}.DirectionMatrix()
	require.ErrorIs(t, err, binning.ErrDimensionMismatch)

	_, err = binning.Config{Directions: [][]float64{{1, 0, 0}, {0, 1}, {0, 0, 1}}}.DirectionMatrix()
	require.ErrorIs(t, err, binning.ErrDimensionMismatch)
}

func TestConfig_Build(t *testing.T) {
	axes := binning.Axes{U: []float64{0, 1, 2.0001}, V: []float64{0, 1}, W: []float64{0, 1}, E: []float64{0, 1}}

	_, err := binning.Config{Axes: axes}.Build(cubic)
	require.ErrorIs(t, err, binning.ErrNonUniformSpacing)

	loose := binning.Config{Axes: axes, SpacingTolerance: &binning.ToleranceConfig{Relative: 1e-3}}
	_, err = loose.Build(cubic)
	require.NoError(t, err)

	// options passed to Build take precedence over the file
	_, err = loose.Build(cubic, binning.WithSpacingTolerance(0, 0))
	require.ErrorIs(t, err, binning.ErrNonUniformSpacing)

	bad := binning.Config{Axes: axes, SpacingTolerance: &binning.ToleranceConfig{Relative: -1}}
	_, err = bad.Build(cubic)
	require.ErrorIs(t, err, binning.ErrInvalidConfig)

	_, err = binning.Config{Axes: axes, Directions: [][]float64{{1, 0, 0}, {1, 0, 0}, {0, 0, 1}}}.Build(cubic)
	require.ErrorIs(t, err, binning.ErrSingularFrame)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := binning.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Directions, 3)

	_, err = binning.LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
