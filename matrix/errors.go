// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels return these sentinels (optionally wrapped with an
// operation tag) and tests check them via errors.Is.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// with fmt.Errorf("<Op>: %w", ErrX) at the facade; callers still use errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, ragged row input, or a non-square factorization.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when no usable pivot remains during LU/inversion.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrMatrixEigenFailed indicates that the Jacobi routine failed to converge
	// under the given tolerance/iterations.
	ErrMatrixEigenFailed = errors.New("matrix: eigen decomposition failed")
)
