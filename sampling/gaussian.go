// SPDX-License-Identifier: MIT

package sampling

import (
	"fmt"

	"github.com/katalvlaran/binsampler/binning"
	"github.com/katalvlaran/binsampler/lattice"
)

const opGaussian = "Gaussian"

// Gaussian samples bin on a lab grid sized by a resolution covariance cov
// (absolute units, Å⁻²).
//
// The principal standard deviations σᵢ of cov set the step
// s = 3·min(σᵢ)/density, and the bounding box is grown by the
// GaussianPadding of cov at nsigmas. The grid is then built as in LabGrid.
//
// Errors:
//   - ErrInvalidSpacing for non-positive or non-finite nsigmas or density.
//   - ErrDegenerateCovariance, matrix.ErrAsymmetry from NewGaussianPadding.
//   - ErrNoBinSpec for a zero Bin.
func Gaussian(bin binning.Bin, cov lattice.Mat3, nsigmas, density float64, opts ...Option) ([]lattice.Vec3, error) {
	if !validPositive(density) {
		return nil, fmt.Errorf("%s: density %g: %w", opGaussian, density, ErrInvalidSpacing)
	}
	pad, err := NewGaussianPadding(cov, nsigmas)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGaussian, err)
	}

	return labGrid(opGaussian, bin, 3*pad.MinSigma()/density, pad, gatherOptions(opts...))
}
