// SPDX-License-Identifier: MIT
package binning_test

import (
	"testing"

	"github.com/katalvlaran/binsampler/binning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAxis_UniformStepRecovered(t *testing.T) {
	tests := []struct {
		name string
		lo   float64
		step float64
		n    int
	}{
		{"unit", 0, 1, 5},
		{"fine", -1, 0.025, 81},
		{"negative step", 2, -0.5, 9},
		{"offset", 10.1, 0.3, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values := make([]float64, tc.n)
			for i := range values {
				values[i] = tc.lo + float64(i)*tc.step
			}
			ax, err := binning.NewAxis(values)
			require.NoError(t, err)
			assert.InDelta(t, tc.step, ax.Step, 1e-12)
			assert.Equal(t, values, ax.Centers)
		})
	}
}

func TestNewAxis_NonUniform(t *testing.T) {
	_, err := binning.NewAxis([]float64{0, 1, 2, 3.5})
	require.ErrorIs(t, err, binning.ErrNonUniformSpacing)

	_, err = binning.NewAxis([]float64{0, 1, 2.001}, binning.WithSpacingTolerance(0, 1e-6))
	require.ErrorIs(t, err, binning.ErrNonUniformSpacing)

	// looser tolerance accepts the same list
	_, err = binning.NewAxis([]float64{0, 1, 2.001}, binning.WithSpacingTolerance(0.01, 0))
	require.NoError(t, err)
}

func TestNewAxis_PairCollapsesToMidpoint(t *testing.T) {
	for _, pair := range [][]float64{{-1, 1}, {0.2, 0.6}, {-3, -2}} {
		ax, err := binning.NewAxis(pair)
		require.NoError(t, err)
		require.Len(t, ax.Centers, 1)
		assert.InDelta(t, (pair[0]+pair[1])/2, ax.Centers[0], 1e-15)
		assert.InDelta(t, pair[1]-pair[0], ax.Step, 1e-15)
	}
}

func TestNewAxis_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantErr error
	}{
		{"empty", nil, binning.ErrInvalidAxis},
		{"single", []float64{1}, binning.ErrInvalidAxis},
		{"reversed pair", []float64{1, -1}, binning.ErrInvalidBounds},
		{"zero width pair", []float64{1, 1}, binning.ErrInvalidAxis},
		{"zero step", []float64{1, 1, 1}, binning.ErrInvalidAxis},
		{"nan", []float64{0, nan(), 2}, binning.ErrInvalidAxis},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := binning.NewAxis(tc.values)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestWithSpacingTolerance_Panics(t *testing.T) {
	assert.Panics(t, func() { binning.WithSpacingTolerance(-1, 0) })
	assert.Panics(t, func() { binning.WithSpacingTolerance(0, nan()) })
}

func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, binning.Linspace(0, 1, 5))
	assert.Equal(t, []float64{3}, binning.Linspace(3, 4, 1))
	assert.Nil(t, binning.Linspace(0, 1, 0))
}

func TestBound(t *testing.T) {
	b := binning.Symmetric(0.5)
	assert.Equal(t, binning.Bound{Lo: -0.25, Hi: 0.25}, b)
	assert.Equal(t, 0.5, b.Width())
	assert.Equal(t, 0.0, b.Mid())
	assert.True(t, b.Contains(0.25))
	assert.False(t, b.Contains(0.2500001))
}
