// SPDX-License-Identifier: MIT

package sampling

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/binsampler/lattice"
)

const opFixedSpacing = "FixedSpacing"

// FixedSpacing samples a grid around center along the unit-normalized columns
// of frame, at the given spacing (RLU length).
//
// Per local axis i, k = max(0, ⌊OddDown(round(extent[i]/spacing))/2⌋) and the
// axis gets the 2k+1 offsets −k..k times spacing. The result is the outer
// product center + Σᵢ ûᵢ·spacing·idxᵢ, in u→v→w order, and always contains
// center itself.
//
// Errors: ErrInvalidSpacing for spacing ≤ 0, a negative extent or non-finite values.
//
// Complexity: O(∏(2kᵢ+1)).
func FixedSpacing(center lattice.Vec3, frame lattice.Frame, extent lattice.Vec3, spacing float64, opts ...Option) ([]lattice.Vec3, error) {
	o := gatherOptions(opts...)
	if !validPositive(spacing) {
		return nil, fmt.Errorf("%s: spacing %g: %w", opFixedSpacing, spacing, ErrInvalidSpacing)
	}
	var ks [3]int
	var steps [3]lattice.Vec3
	for i := 0; i < 3; i++ {
		if !validNonNegative(extent[i]) {
			return nil, fmt.Errorf("%s: extent[%d] %g: %w", opFixedSpacing, i, extent[i], ErrInvalidSpacing)
		}
		ks[i] = halfCount(extent[i], spacing, OddDown)
		steps[i] = frame.Unit(i).Scale(spacing)
	}

	out := make([]lattice.Vec3, 0, (2*ks[0]+1)*(2*ks[1]+1)*(2*ks[2]+1))
	var a, b, c int
	for a = -ks[0]; a <= ks[0]; a++ {
		for b = -ks[1]; b <= ks[1]; b++ {
			for c = -ks[2]; c <= ks[2]; c++ {
				out = append(out, center.
					Add(steps[0].Scale(float64(a))).
					Add(steps[1].Scale(float64(b))).
					Add(steps[2].Scale(float64(c))))
			}
		}
	}
	o.logger.Debug("sampling: fixed-spacing grid",
		slog.Any("half_counts", ks), slog.Int("points", len(out)))

	return out, nil
}
