// SPDX-License-Identifier: MIT
// Package binning: sentinel errors.
// Construction-time checks return these (wrapped with "<Op>: ..." context);
// geometry queries on validated values never fail.

package binning

import (
	"errors"

	"github.com/katalvlaran/binsampler/lattice"
)

var (
	// ErrNonUniformSpacing indicates an axis whose consecutive differences differ
	// beyond the spacing tolerance.
	ErrNonUniformSpacing = errors.New("binning: axis values are not uniformly spaced")

	// ErrInvalidAxis indicates an axis with fewer than two values, a zero step
	// or non-finite values.
	ErrInvalidAxis = errors.New("binning: invalid axis specification")

	// ErrInvalidBounds indicates lo > hi, non-finite bounds or a negative ΔE.
	ErrInvalidBounds = errors.New("binning: invalid bounds")

	// ErrInvalidConfig indicates a configuration value outside its domain.
	ErrInvalidConfig = errors.New("binning: invalid configuration")
)

// Errors shared with the lattice package; re-exported so callers of this
// package need a single import for errors.Is checks.
var (
	ErrSingularFrame     = lattice.ErrSingularFrame
	ErrSingularLattice   = lattice.ErrSingularLattice
	ErrDimensionMismatch = lattice.ErrDimensionMismatch
	ErrNilCrystal        = lattice.ErrNilCrystal
)
