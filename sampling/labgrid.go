// SPDX-License-Identifier: MIT

package sampling

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/binsampler/binning"
	"github.com/katalvlaran/binsampler/lattice"
)

const opLabGrid = "LabGrid"

// LabGrid samples bin on an axis-aligned grid in absolute space.
//
// Implementation:
//   - Stage 1: take the bin's absolute bounding box (BinSpec.LabExtrema) and
//     grow each axis on both sides by pad.Margin(). A nil pad is NoPadding.
//   - Stage 2: per Cartesian axis, n = ⌊OddUp(round(extent/spacing))/2⌋ and
//     2n+1 points at spacing, centered on the grown box.
//   - Stage 3: map each grid point to local offsets with (B·F)⁻¹, then to
//     RLU as center + F·l.
//
// The grid over-covers a sheared bin, so the result is a superset of the
// interior. WithClip keeps exactly the points Bin.Contains accepts: the
// closed bounds are tested on each RLU point's local offset from the center,
// so the clipped grid equals bin.Filter of the unclipped one, faces included.
// A grid point on a face is kept or dropped as that same test rounds it.
//
// Errors: ErrInvalidSpacing, ErrInvalidPadding, ErrNoBinSpec.
//
// Complexity: O(∏(2nᵢ+1)).
func LabGrid(bin binning.Bin, spacing float64, pad Padding, opts ...Option) ([]lattice.Vec3, error) {
	return labGrid(opLabGrid, bin, spacing, pad, gatherOptions(opts...))
}

func labGrid(op string, bin binning.Bin, spacing float64, pad Padding, o options) ([]lattice.Vec3, error) {
	spec := bin.Spec()
	if spec == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNoBinSpec)
	}
	if !validPositive(spacing) {
		return nil, fmt.Errorf("%s: spacing %g: %w", op, spacing, ErrInvalidSpacing)
	}
	if pad == nil {
		pad = NoPadding{}
	}
	margin := pad.Margin()

	box := spec.LabExtrema()
	var axes [3][]float64
	for i := 0; i < 3; i++ {
		if !validNonNegative(margin[i]) {
			return nil, fmt.Errorf("%s: margin[%d] %g: %w", op, i, margin[i], ErrInvalidPadding)
		}
		lo, hi := box[i].Lo-margin[i], box[i].Hi+margin[i]
		n := halfCount(hi-lo, spacing, OddUp)
		mid := (lo + hi) / 2
		axes[i] = make([]float64, 0, 2*n+1)
		for k := -n; k <= n; k++ {
			axes[i] = append(axes[i], mid+float64(k)*spacing)
		}
	}

	frame := spec.Frame()
	labInv := spec.InverseLabMatrix()
	center := bin.Center()
	total := len(axes[0]) * len(axes[1]) * len(axes[2])
	out := make([]lattice.Vec3, 0, total)
	var q lattice.Vec3
	for _, x := range axes[0] {
		for _, y := range axes[1] {
			for _, z := range axes[2] {
				q = center.Add(frame.ToRLU(labInv.MulVec(lattice.Vec3{x, y, z})))
				if o.clip && !bin.Contains(q) {
					continue
				}
				out = append(out, q)
			}
		}
	}
	o.logger.Debug("sampling: lab grid",
		slog.String("op", op),
		slog.Int("nx", len(axes[0])), slog.Int("ny", len(axes[1])), slog.Int("nz", len(axes[2])),
		slog.Float64("spacing", spacing),
		slog.Bool("clip", o.clip),
		slog.Int("points", len(out)))

	return out, nil
}
