// SPDX-License-Identifier: MIT
// Package lattice: sentinel errors. Callers branch with errors.Is.

package lattice

import "errors"

var (
	// ErrSingularFrame indicates a direction frame whose columns are linearly dependent.
	ErrSingularFrame = errors.New("lattice: direction frame is not invertible")

	// ErrSingularLattice indicates a reciprocal-vector matrix that cannot be inverted.
	ErrSingularLattice = errors.New("lattice: reciprocal lattice is not invertible")

	// ErrDimensionMismatch indicates slice input that is not 3 or 3×3.
	ErrDimensionMismatch = errors.New("lattice: dimension mismatch")

	// ErrInvalidCell indicates non-positive lengths or angles that do not close a cell.
	ErrInvalidCell = errors.New("lattice: invalid unit cell")

	// ErrNilCrystal indicates a nil Crystal collaborator.
	ErrNilCrystal = errors.New("lattice: crystal is nil")
)
