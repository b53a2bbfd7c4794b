// SPDX-License-Identifier: MIT
// Package sampling: sentinel errors.

package sampling

import "errors"

var (
	// ErrInvalidSpacing indicates a spacing, extent, density or nsigmas that is
	// non-positive or non-finite.
	ErrInvalidSpacing = errors.New("sampling: invalid spacing")

	// ErrInvalidCount indicates a negative sample count.
	ErrInvalidCount = errors.New("sampling: invalid sample count")

	// ErrNeedRandSource indicates a stochastic sampler called without an RNG.
	// Supply one with WithRand or WithSeed.
	ErrNeedRandSource = errors.New("sampling: rng is required")

	// ErrDegenerateCovariance indicates a covariance with a non-positive or
	// non-finite principal variance.
	ErrDegenerateCovariance = errors.New("sampling: degenerate covariance")

	// ErrInvalidPadding indicates a negative or non-finite margin.
	ErrInvalidPadding = errors.New("sampling: invalid padding")

	// ErrOutOfRange indicates an energy index outside the binning.
	ErrOutOfRange = errors.New("sampling: index out of range")

	// ErrNoBinSpec indicates a zero Bin value with no BinSpec attached.
	ErrNoBinSpec = errors.New("sampling: bin has no spec")
)
