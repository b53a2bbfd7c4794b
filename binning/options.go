// SPDX-License-Identifier: MIT

// Package binning: functional options for construction.
// Option constructors panic on nonsensical values (programmer error); the
// constructors that consume them never panic.
package binning

import (
	"log/slog"
	"math"
)

const (
	// DefaultSpacingRTol is the relative tolerance of the uniform-spacing check.
	DefaultSpacingRTol = 1e-5

	// DefaultSpacingATol is the absolute tolerance of the uniform-spacing check.
	DefaultSpacingATol = 1e-8
)

const panicToleranceInvalid = "binning: WithSpacingTolerance: tolerances must be finite, non-negative"

// Option configures NewUniformBinning and NewAxis.
type Option func(*options)

type options struct {
	rtol, atol float64
	logger     *slog.Logger
}

// WithSpacingTolerance sets the uniform-spacing check to
// |dᵢ − d₀| ≤ atol + rtol·|d₀|.
func WithSpacingTolerance(rtol, atol float64) Option {
	if !validTolerance(rtol) || !validTolerance(atol) {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.rtol, o.atol = rtol, atol }
}

// WithLogger routes debug output to l. Nil falls back to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func validTolerance(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func gatherOptions(opts ...Option) options {
	o := options{rtol: DefaultSpacingRTol, atol: DefaultSpacingATol}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}
