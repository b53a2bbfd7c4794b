// SPDX-License-Identifier: MIT

package sampling

import (
	"log/slog"
	"math/rand"
)

// Option configures a sampler call.
type Option func(*options)

type options struct {
	logger *slog.Logger
	rng    *rand.Rand
	clip   bool
}

// WithLogger routes debug output to l. Nil falls back to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRand provides the RNG for MonteCarlo. The generator is not safe for
// concurrent use; do not share it between goroutines.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampling: WithRand(nil)")
	}

	return func(o *options) { o.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithClip makes LabGrid and Gaussian drop points outside the unpadded bin.
func WithClip() Option {
	return func(o *options) { o.clip = true }
}

func gatherOptions(opts ...Option) options {
	var o options
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
