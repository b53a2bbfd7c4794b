// SPDX-License-Identifier: MIT

package sampling

import (
	"fmt"
	"math"

	"github.com/katalvlaran/binsampler/binning"
	"github.com/katalvlaran/binsampler/lattice"
	"github.com/katalvlaran/binsampler/matrix"
)

const opNewGaussianPadding = "NewGaussianPadding"

// Padding decides how far LabGrid extends the bin's absolute-space bounding
// box beyond its faces, per Cartesian axis (inverse length).
type Padding interface {
	Margin() lattice.Vec3
}

// NoPadding samples exactly the bounding box.
type NoPadding struct{}

// Margin returns zero on every axis.
func (NoPadding) Margin() lattice.Vec3 { return lattice.Vec3{} }

// FixedMargin grows the bounding box by a fixed amount per axis.
type FixedMargin lattice.Vec3

// UniformMargin returns the same margin m on all three axes.
func UniformMargin(m float64) FixedMargin { return FixedMargin{m, m, m} }

// Margin returns the configured margin.
func (f FixedMargin) Margin() lattice.Vec3 { return lattice.Vec3(f) }

// GaussianPadding derives the margin from a covariance in absolute space:
// the bounding box of the principal-axes box with half-widths nsigmas·σᵢ.
type GaussianPadding struct {
	margin lattice.Vec3
	sigmas lattice.Vec3 // ascending
	axes   lattice.Mat3 // principal axes as columns, matching sigmas
}

// NewGaussianPadding eigendecomposes cov (Jacobi) and builds the margin.
//
// Implementation:
//   - Stage 1: reject non-finite entries and the zero matrix.
//   - Stage 2: matrix.Eigen with a tolerance relative to the largest entry.
//   - Stage 3: σᵢ = √λᵢ, requiring λᵢ above the tolerance.
//   - Stage 4: margin = ExtremaOfBox(axes, ±nsigmas·σᵢ).Hi per axis.
//
// Errors:
//   - ErrInvalidSpacing for nsigmas ≤ 0 or non-finite.
//   - ErrDegenerateCovariance for non-finite entries or λᵢ ≤ tolerance.
//   - matrix.ErrAsymmetry for a non-symmetric cov.
func NewGaussianPadding(cov lattice.Mat3, nsigmas float64) (GaussianPadding, error) {
	if !validPositive(nsigmas) {
		return GaussianPadding{}, fmt.Errorf("%s: nsigmas %g: %w", opNewGaussianPadding, nsigmas, ErrInvalidSpacing)
	}
	var scale float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.IsNaN(cov[i][j]) || math.IsInf(cov[i][j], 0) {
				return GaussianPadding{}, fmt.Errorf("%s: cov[%d][%d] %g: %w",
					opNewGaussianPadding, i, j, cov[i][j], ErrDegenerateCovariance)
			}
			scale = math.Max(scale, math.Abs(cov[i][j]))
		}
	}
	if scale == 0 {
		return GaussianPadding{}, fmt.Errorf("%s: zero covariance: %w", opNewGaussianPadding, ErrDegenerateCovariance)
	}

	tol := matrix.DefaultEigenTol * scale
	d, err := cov.Dense()
	if err != nil {
		return GaussianPadding{}, fmt.Errorf("%s: %w", opNewGaussianPadding, err)
	}
	eigs, vecs, err := matrix.Eigen(d, tol, matrix.DefaultEigenMaxIter)
	if err != nil {
		return GaussianPadding{}, fmt.Errorf("%s: %w", opNewGaussianPadding, err)
	}
	axes, err := lattice.Mat3FromDense(vecs)
	if err != nil {
		return GaussianPadding{}, fmt.Errorf("%s: %w", opNewGaussianPadding, err)
	}

	var p GaussianPadding
	var half [3]binning.Bound
	for i, l := range eigs {
		if l <= tol {
			return GaussianPadding{}, fmt.Errorf("%s: eigenvalue %g: %w", opNewGaussianPadding, l, ErrDegenerateCovariance)
		}
		p.sigmas[i] = math.Sqrt(l)
		half[i] = binning.Symmetric(2 * nsigmas * p.sigmas[i])
	}
	p.axes = axes
	ext := binning.ExtremaOfBox(axes, half)
	for i := range ext {
		p.margin[i] = ext[i].Hi
	}

	return p, nil
}

// Margin returns the per-axis margin.
func (g GaussianPadding) Margin() lattice.Vec3 { return g.margin }

// Sigmas returns the principal standard deviations, ascending.
func (g GaussianPadding) Sigmas() lattice.Vec3 { return g.sigmas }

// Axes returns the principal axes as columns, in the order of Sigmas.
func (g GaussianPadding) Axes() lattice.Mat3 { return g.axes }

// MinSigma returns the smallest principal standard deviation.
func (g GaussianPadding) MinSigma() float64 { return g.sigmas[0] }

// IsotropicCovariance returns variance·I.
func IsotropicCovariance(variance float64) lattice.Mat3 {
	return lattice.Identity3().Scale(variance)
}
