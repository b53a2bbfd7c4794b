// SPDX-License-Identifier: MIT

package sampling

import (
	"fmt"

	"github.com/katalvlaran/binsampler/binning"
	"github.com/katalvlaran/binsampler/lattice"
)

// Sampler is one point-sampling strategy with its parameters fixed.
type Sampler interface {
	Sample(bin binning.Bin, opts ...Option) ([]lattice.Vec3, error)
}

// FixedSpacingSampler runs FixedSpacing over the bin: the extent on each
// local axis is the bin width times the length of the frame column, in RLU.
type FixedSpacingSampler struct {
	Spacing float64
}

// Sample implements Sampler.
func (s FixedSpacingSampler) Sample(bin binning.Bin, opts ...Option) ([]lattice.Vec3, error) {
	spec := bin.Spec()
	if spec == nil {
		return nil, fmt.Errorf("%s: %w", opFixedSpacing, ErrNoBinSpec)
	}
	frame := spec.Frame()
	bounds := spec.Bounds()
	var extent lattice.Vec3
	for i := 0; i < 3; i++ {
		extent[i] = bounds[i].Width() * frame.Column(i).Norm()
	}

	return FixedSpacing(bin.Center(), frame, extent, s.Spacing, opts...)
}

// LabGridSampler runs LabGrid with a fixed spacing and padding.
type LabGridSampler struct {
	Spacing float64
	Padding Padding
}

// Sample implements Sampler.
func (s LabGridSampler) Sample(bin binning.Bin, opts ...Option) ([]lattice.Vec3, error) {
	return LabGrid(bin, s.Spacing, s.Padding, opts...)
}

// GaussianSampler runs Gaussian with a fixed covariance.
type GaussianSampler struct {
	Covariance lattice.Mat3
	NSigmas    float64
	Density    float64
}

// Sample implements Sampler.
func (s GaussianSampler) Sample(bin binning.Bin, opts ...Option) ([]lattice.Vec3, error) {
	return Gaussian(bin, s.Covariance, s.NSigmas, s.Density, opts...)
}

// MonteCarloSampler runs MonteCarlo with a fixed sample count.
type MonteCarloSampler struct {
	N int
}

// Sample implements Sampler.
func (s MonteCarloSampler) Sample(bin binning.Bin, opts ...Option) ([]lattice.Vec3, error) {
	return MonteCarlo(bin, s.N, opts...)
}

// SampleGrid runs s over every spatial bin of ub at energy index l, calling
// fn with the bin indices and its points. It stops at the first error from s
// or when fn returns false.
func SampleGrid(ub *binning.UniformBinning, l int, s Sampler, fn func(i, j, k int, points []lattice.Vec3) bool, opts ...Option) error {
	var err error
	ub.Each(func(i, j, k int, _ lattice.Vec3) bool {
		bin, ok := ub.Bin(i, j, k, l)
		if !ok {
			err = fmt.Errorf("SampleGrid: energy index %d: %w", l, ErrOutOfRange)
			return false
		}
		var pts []lattice.Vec3
		if pts, err = s.Sample(bin, opts...); err != nil {
			err = fmt.Errorf("SampleGrid: bin (%d,%d,%d): %w", i, j, k, err)
			return false
		}

		return fn(i, j, k, pts)
	})

	return err
}
