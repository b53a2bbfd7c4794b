// SPDX-License-Identifier: MIT

package sampling

import (
	"fmt"

	"github.com/katalvlaran/binsampler/lattice"
	"github.com/katalvlaran/binsampler/matrix"
)

const opSampleCovariance = "SampleCovariance"

// SampleCovariance estimates the covariance and mean of a point cloud, for
// example a resolution ellipsoid sampled in absolute space. The result feeds
// NewGaussianPadding or Gaussian.
//
// Errors: ErrInvalidCount for fewer than two points.
func SampleCovariance(points []lattice.Vec3) (lattice.Mat3, lattice.Vec3, error) {
	if len(points) < 2 {
		return lattice.Mat3{}, lattice.Vec3{}, fmt.Errorf("%s: %d points: %w", opSampleCovariance, len(points), ErrInvalidCount)
	}
	rows := make([][]float64, len(points))
	for i := range points {
		rows[i] = points[i][:]
	}
	x, err := matrix.NewFromRows(rows)
	if err != nil {
		return lattice.Mat3{}, lattice.Vec3{}, fmt.Errorf("%s: %w", opSampleCovariance, err)
	}
	cov, means, err := matrix.Covariance(x)
	if err != nil {
		return lattice.Mat3{}, lattice.Vec3{}, fmt.Errorf("%s: %w", opSampleCovariance, err)
	}
	m, err := lattice.Mat3FromDense(cov)
	if err != nil {
		return lattice.Mat3{}, lattice.Vec3{}, fmt.Errorf("%s: %w", opSampleCovariance, err)
	}

	return m, lattice.Vec3{means[0], means[1], means[2]}, nil
}
