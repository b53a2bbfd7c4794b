// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/binsampler/matrix"
	"github.com/stretchr/testify/require"
)

const tol = 1e-10

// hide wraps any Matrix to hide its concrete type, forcing the interface path.
type hide struct{ matrix.Matrix }

func nan() float64 { return math.NaN() }

// mustFromRows builds a Dense or fails the test.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// requireClose compares every element of got against want within tol.
func requireClose(t *testing.T, want [][]float64, got matrix.Matrix, eps float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows())
	require.Equal(t, len(want[0]), got.Cols())
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err)
			require.InDeltaf(t, want[i][j], v, eps, "element [%d,%d]", i, j)
		}
	}
}
