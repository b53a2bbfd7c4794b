// SPDX-License-Identifier: MIT
package sampling_test

import (
	"testing"

	"github.com/katalvlaran/binsampler/binning"
	"github.com/katalvlaran/binsampler/lattice"
	"github.com/katalvlaran/binsampler/sampling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplers_Interchangeable(t *testing.T) {
	bin := symmetricBin(t, cubic, lattice.Identity3(), lattice.Vec3{1, 1, 1}, lattice.Vec3{2, 0, 0})

	tests := []struct {
		name    string
		sampler sampling.Sampler
		want    int
	}{
		{"fixed spacing", sampling.FixedSpacingSampler{Spacing: 0.25}, 27},
		{"lab grid", sampling.LabGridSampler{Spacing: 0.25}, 125},
		{"lab grid padded", sampling.LabGridSampler{Spacing: 0.25, Padding: sampling.UniformMargin(0.25)}, 343},
		{"gaussian", sampling.GaussianSampler{Covariance: sampling.IsotropicCovariance(0.01), NSigmas: 2, Density: 3}, 3375},
		{"monte carlo", sampling.MonteCarloSampler{N: 40}, 40},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pts, err := tc.sampler.Sample(bin, sampling.WithSeed(5))
			require.NoError(t, err)
			assert.Len(t, pts, tc.want)
		})
	}
}

func TestFixedSpacingSampler_ScalesExtentByColumnLength(t *testing.T) {
	// column u has length 2, so width 1 spans 2 RLU: 2/0.5 = 4 → 3 points
	dirs := lattice.MatFromColumns(lattice.Vec3{2, 0, 0}, lattice.Vec3{0, 1, 0}, lattice.Vec3{0, 0, 1})
	bin := symmetricBin(t, cubic, dirs, lattice.Vec3{1, 0.1, 0.1}, lattice.Vec3{})

	pts, err := sampling.FixedSpacingSampler{Spacing: 0.5}.Sample(bin)
	require.NoError(t, err)
	assert.Equal(t, []lattice.Vec3{{-0.5, 0, 0}, {0, 0, 0}, {0.5, 0, 0}}, pts)

	_, err = sampling.FixedSpacingSampler{Spacing: 0.5}.Sample(binning.Bin{})
	require.ErrorIs(t, err, sampling.ErrNoBinSpec)
}

func TestSampleGrid(t *testing.T) {
	ub, err := binning.NewUniformBinning(cubic, lattice.Identity3(), binning.Axes{
		U: []float64{0, 1, 2}, V: []float64{0, 1}, W: []float64{-0.5, 0.5}, E: []float64{0, 1, 2},
	})
	require.NoError(t, err)

	visited := 0
	err = sampling.SampleGrid(ub, 1, sampling.MonteCarloSampler{N: 20}, func(i, j, k int, pts []lattice.Vec3) bool {
		visited++
		bin, ok := ub.Bin(i, j, k, 1)
		require.True(t, ok)
		assert.Len(t, pts, 20)
		for _, p := range pts {
			assert.True(t, bin.Contains(p))
		}
		return true
	}, sampling.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 3, visited)

	// early stop
	visited = 0
	err = sampling.SampleGrid(ub, 0, sampling.LabGridSampler{Spacing: 0.5}, func(int, int, int, []lattice.Vec3) bool {
		visited++
		return false
	})
	require.NoError(t, err)
	assert.Equal(t, 1, visited)

	err = sampling.SampleGrid(ub, 3, sampling.MonteCarloSampler{N: 1}, func(int, int, int, []lattice.Vec3) bool { return true })
	require.ErrorIs(t, err, sampling.ErrOutOfRange)

	err = sampling.SampleGrid(ub, 0, sampling.MonteCarloSampler{N: 1}, func(int, int, int, []lattice.Vec3) bool { return true })
	require.ErrorIs(t, err, sampling.ErrNeedRandSource)
}
