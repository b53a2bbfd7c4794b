// SPDX-License-Identifier: MIT
package sampling_test

import (
	"testing"

	"github.com/katalvlaran/binsampler/binning"
	"github.com/katalvlaran/binsampler/lattice"
	"github.com/stretchr/testify/require"
)

// cubic has B = I, so RLU and absolute coordinates coincide.
var cubic = lattice.Basis(lattice.Identity3())

func symmetricBin(t *testing.T, c lattice.Crystal, dirs lattice.Mat3, widths lattice.Vec3, center lattice.Vec3) binning.Bin {
	t.Helper()
	f, err := lattice.NewFrame(dirs)
	require.NoError(t, err)
	spec, err := binning.NewSymmetricBinSpec(c, f, widths, 1)
	require.NoError(t, err)

	return binning.NewBin(spec, center, 0)
}

// localOffsets maps points back to offsets from the bin center in local coordinates.
func localOffsets(b binning.Bin, pts []lattice.Vec3) []lattice.Vec3 {
	f := b.Spec().Frame()
	lc := f.ToLocal(b.Center())
	out := make([]lattice.Vec3, len(pts))
	for i, p := range pts {
		out[i] = f.ToLocal(p).Sub(lc)
	}

	return out
}

func sheared() lattice.Mat3 {
	return lattice.MatFromColumns(lattice.Vec3{1, 0, 0}, lattice.Vec3{1, 1, 0}, lattice.Vec3{0, 0, 1})
}
