// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/symmetry checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (caller must ensure).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has length n.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks A is square and symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tol), ErrAsymmetry.
// Complexity: O(n^2), Space O(1).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	var (
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // upper triangle only
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}
