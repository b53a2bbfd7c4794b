// SPDX-License-Identifier: MIT

package binning

import "github.com/katalvlaran/binsampler/lattice"

// FindPointsInBin returns the indices of points (RLU) that lie inside the bin
// centered at center with the given frame and local bounds.
//
// Both center and each point are mapped to local coordinates with the
// frame's inverse; a point is inside when, on every axis, its offset from
// the local center lies in the closed bound. Input order is preserved and
// duplicates are reported once per occurrence.
//
// Complexity: O(len(points)).
func FindPointsInBin(center lattice.Vec3, frame lattice.Frame, bounds [3]Bound, points []lattice.Vec3) []int {
	lc := frame.ToLocal(center)
	out := make([]int, 0, len(points))
	for i, p := range points {
		if insideLocal(frame.ToLocal(p).Sub(lc), bounds) {
			out = append(out, i)
		}
	}

	return out
}

// insideLocal reports whether a local offset lies within all three bounds.
func insideLocal(d lattice.Vec3, bounds [3]Bound) bool {
	return bounds[0].Contains(d[0]) && bounds[1].Contains(d[1]) && bounds[2].Contains(d[2])
}
