// SPDX-License-Identifier: MIT
package binning_test

import (
	"testing"

	"github.com/katalvlaran/binsampler/binning"
	"github.com/katalvlaran/binsampler/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPointsInBin_Basic(t *testing.T) {
	points := []lattice.Vec3{{0, 0, 0}, {1, 1, 1}, {2, 0, 0}}
	got := binning.FindPointsInBin(lattice.Vec3{}, lattice.IdentityFrame(), unitBounds(), points)
	assert.Equal(t, []int{0, 1}, got)
}

func TestFindPointsInBin_OrderAndDuplicates(t *testing.T) {
	points := []lattice.Vec3{{5, 5, 5}, {0.5, 0, 0}, {0.5, 0, 0}, {-1, -1, -1}, {0, 1.0000001, 0}}
	got := binning.FindPointsInBin(lattice.Vec3{}, lattice.IdentityFrame(), unitBounds(), points)
	assert.Equal(t, []int{1, 2, 3}, got)

	assert.Empty(t, binning.FindPointsInBin(lattice.Vec3{}, lattice.IdentityFrame(), unitBounds(), nil))
}

func TestFindPointsInBin_ShearedFrame(t *testing.T) {
	// u = (1,0,0), v = (1,1,0): the bin is a parallelogram in the qx–qy plane
	f := mustFrame(t, lattice.MatFromColumns(lattice.Vec3{1, 0, 0}, lattice.Vec3{1, 1, 0}, lattice.Vec3{0, 0, 1}))
	bounds := [3]binning.Bound{{Lo: -0.5, Hi: 0.5}, {Lo: -0.5, Hi: 0.5}, {Lo: -0.5, Hi: 0.5}}
	center := lattice.Vec3{2, 1, 0} // local (1, 1, 0)

	points := []lattice.Vec3{
		{2, 1, 0},       // center
		{2.8, 1.4, 0},   // local offset (0.4, 0.4, 0)
		{1.4, 1.4, 0},   // offset u = -1
		{1.9, 0.6, 0.4}, // local offset (0.3, -0.4, 0.4)
		{2.5, 0.4, 0},   // offset v = -0.6
		{1.1, 1.4, 0},   // inside the bounding box, outside the parallelogram
	}
	got := binning.FindPointsInBin(center, f, bounds, points)
	assert.Equal(t, []int{0, 1, 3}, got)
}

func TestBin_ContainsAndFilter(t *testing.T) {
	spec, err := binning.NewBinSpec(cubic, lattice.IdentityFrame(), unitBounds(), 0.5)
	require.NoError(t, err)
	b := binning.NewBin(spec, lattice.Vec3{1, 0, 0}, 3)

	assert.True(t, b.Contains(lattice.Vec3{2, 1, -1}))
	assert.True(t, b.Contains(lattice.Vec3{1, 0, 0}))
	assert.False(t, b.Contains(lattice.Vec3{2.01, 0, 0}))

	qs := []lattice.Vec3{{3, 0, 0}, {0, 0, 0}, {1.5, 0.5, 0.5}}
	assert.Equal(t, []lattice.Vec3{{0, 0, 0}, {1.5, 0.5, 0.5}}, b.Filter(qs))
	assert.Equal(t, binning.Bound{Lo: 2.75, Hi: 3.25}, b.EnergyBound())
	assert.Same(t, spec, b.Spec())
}
