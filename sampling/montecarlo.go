// SPDX-License-Identifier: MIT

package sampling

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/binsampler/binning"
	"github.com/katalvlaran/binsampler/lattice"
)

const opMonteCarlo = "MonteCarlo"

// MonteCarlo draws nsamples RLU points uniformly inside bin: each local
// coordinate is drawn independently in its bound, then mapped as
// center + F·l. The RNG comes from WithRand or WithSeed.
//
// Errors: ErrNeedRandSource, ErrInvalidCount (nsamples < 0), ErrNoBinSpec.
func MonteCarlo(bin binning.Bin, nsamples int, opts ...Option) ([]lattice.Vec3, error) {
	o := gatherOptions(opts...)
	spec := bin.Spec()
	switch {
	case spec == nil:
		return nil, fmt.Errorf("%s: %w", opMonteCarlo, ErrNoBinSpec)
	case nsamples < 0:
		return nil, fmt.Errorf("%s: nsamples %d: %w", opMonteCarlo, nsamples, ErrInvalidCount)
	case o.rng == nil:
		return nil, fmt.Errorf("%s: %w", opMonteCarlo, ErrNeedRandSource)
	}

	frame := spec.Frame()
	bounds := spec.Bounds()
	center := bin.Center()
	out := make([]lattice.Vec3, nsamples)
	var local lattice.Vec3
	for n := range out {
		for i := 0; i < 3; i++ {
			local[i] = bounds[i].Lo + o.rng.Float64()*bounds[i].Width()
		}
		out[n] = center.Add(frame.ToRLU(local))
	}
	o.logger.Debug("sampling: monte carlo", slog.Int("points", nsamples))

	return out, nil
}
