// SPDX-License-Identifier: MIT

package binning

import (
	"math"

	"github.com/katalvlaran/binsampler/lattice"
)

// CornersOfParallelepiped returns the eight corners of the box given by
// bounds in the coordinates of directions (columns are the edge directions),
// shifted by offset. Corner k takes Hi on axis i when bit i of k is set.
func CornersOfParallelepiped(directions lattice.Mat3, bounds [3]Bound, offset lattice.Vec3) [8]lattice.Vec3 {
	var out [8]lattice.Vec3
	var local lattice.Vec3
	for k := 0; k < 8; k++ {
		for i := 0; i < 3; i++ {
			if k&(1<<i) != 0 {
				local[i] = bounds[i].Hi
			} else {
				local[i] = bounds[i].Lo
			}
		}
		out[k] = directions.MulVec(local).Add(offset)
	}

	return out
}

// ExtremaOfBox returns, per Cartesian axis, the min and max over the corners
// of the (possibly sheared) box: its axis-aligned bounding box.
func ExtremaOfBox(directions lattice.Mat3, bounds [3]Bound) [3]Bound {
	corners := CornersOfParallelepiped(directions, bounds, lattice.Vec3{})
	var out [3]Bound
	for i := 0; i < 3; i++ {
		out[i] = Bound{Lo: math.Inf(1), Hi: math.Inf(-1)}
	}
	for _, c := range corners {
		for i := 0; i < 3; i++ {
			out[i].Lo = math.Min(out[i].Lo, c[i])
			out[i].Hi = math.Max(out[i].Hi, c[i])
		}
	}

	return out
}
