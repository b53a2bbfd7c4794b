// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the relative pivot threshold used by LU/Inverse/Det:
	// a pivot with |p| <= eps * max|A| is treated as zero (singular input).
	DefaultEpsilon = 1e-12

	// DefaultEigenTol is the off-diagonal convergence threshold for Eigen.
	DefaultEigenTol = 1e-12

	// DefaultEigenMaxIter caps the number of Jacobi rotations.
	DefaultEigenMaxIter = 200
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the relative singularity threshold for pivots.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies opts over the defaults in order (last wins).
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
