// SPDX-License-Identifier: MIT
package binning_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/binsampler/binning"
	"github.com/katalvlaran/binsampler/lattice"
	"github.com/stretchr/testify/require"
)

func nan() float64 { return math.NaN() }

// cubic is a simple-cubic crystal with a = 2π Å, so B is the identity.
var cubic = lattice.Basis(lattice.Identity3())

// hexagonal returns the reciprocal basis of a hexagonal cell.
func hexagonal(t *testing.T) lattice.Basis {
	t.Helper()
	b, err := lattice.NewBasisFromCell(3.5, 3.5, 5.6, 90, 90, 120)
	require.NoError(t, err)

	return b
}

func mustFrame(t *testing.T, m lattice.Mat3) lattice.Frame {
	t.Helper()
	f, err := lattice.NewFrame(m)
	require.NoError(t, err)

	return f
}

func unitBounds() [3]binning.Bound {
	return [3]binning.Bound{{Lo: -1, Hi: 1}, {Lo: -1, Hi: 1}, {Lo: -1, Hi: 1}}
}
