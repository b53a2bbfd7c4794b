// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// multiplication, matrix-vector products, transpose, LU factorization with
// partial pivoting, inversion, determinants and a symmetric eigen-solver.
// All functions perform strict fail-fast validation and never mutate inputs.

package matrix

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ZeroSum is the initial sum value for substitution loops and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opLU        = "LU"
	opSolve     = "Solve"
	opInverse   = "Inverse"
	opDet       = "Det"
	opEigen     = "Eigen"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewDense(ad.r, bd.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int
		aik     float64
	)
	// i→k→j order keeps the inner loop on contiguous rows of B and C.
	for i = 0; i < ad.r; i++ {
		for k = 0; k < ad.c; k++ {
			aik = ad.data[i*ad.c+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < bd.c; j++ {
				out.data[i*out.c+j] += aik * bd.data[k*bd.c+j]
			}
		}
	}

	return out, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	var i, j, base int
	var acc float64
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			out.data[j*out.c+i] = d.data[i*d.c+j]
		}
	}

	return out, nil
}

// LUFactors holds P·A = L·U for a square A, as produced by LU.
//   - L is unit lower triangular, U is upper triangular.
//   - Perm[i] is the source row of A that ended up in row i.
//   - Sign is the parity of the permutation (+1 or −1).
type LUFactors struct {
	L, U *Dense
	Perm []int
	Sign float64
}

// LU computes a Doolittle factorization with partial (row) pivoting.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy into a scratch buffer.
//   - Stage 2: For each column k pick the row with the largest |a[i,k]|, i≥k
//     (first such row wins on ties), swap it up and eliminate below.
//   - Stage 3: Split the scratch buffer into L and U.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular when a pivot falls below
//     eps·max|A| (eps from WithEpsilon, DefaultEpsilon otherwise).
//
// Determinism:
//   - Fixed scan order and tie-breaking give identical factors for identical inputs.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix, opts ...Option) (*LUFactors, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	n := src.r
	a := make([]float64, len(src.data)) // scratch; input stays untouched
	copy(a, src.data)

	// Singularity threshold relative to the largest magnitude entry.
	scale := 0.0
	for _, v := range a {
		scale = math.Max(scale, math.Abs(v))
	}
	if scale == 0 {
		return nil, matrixErrorf(opLU, ErrSingular)
	}
	thr := o.eps * scale

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1.0

	var (
		i, j, k, p int
		best, f    float64
	)
	for k = 0; k < n; k++ {
		// Pivot search.
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= thr {
			return nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}
		// Eliminate below the pivot; multipliers are stored in place.
		for i = k + 1; i < n; i++ {
			f = a[i*n+k] / a[k*n+k]
			a[i*n+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	L, _ := NewIdentity(n)
	U, _ := NewDense(n, n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j < i {
				L.data[i*n+j] = a[i*n+j]
			} else {
				U.data[i*n+j] = a[i*n+j]
			}
		}
	}

	return &LUFactors{L: L, U: U, Perm: perm, Sign: sign}, nil
}

// Solve returns x with A·x = b using the stored factors.
//
// Errors: ErrDimensionMismatch when len(b) != n.
// Complexity: O(n^2).
func (f *LUFactors) Solve(b []float64) ([]float64, error) {
	n := f.U.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	y := make([]float64, n)
	x := make([]float64, n)
	var (
		i, k int
		sum  float64
	)
	// Forward substitution: L·y = P·b.
	for i = 0; i < n; i++ {
		sum = b[f.Perm[i]]
		for k = 0; k < i; k++ {
			sum -= f.L.data[i*n+k] * y[k]
		}
		y[i] = sum
	}
	// Backward substitution: U·x = y.
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for k = i + 1; k < n; k++ {
			sum -= f.U.data[i*n+k] * x[k]
		}
		x[i] = sum / f.U.data[i*n+i]
	}

	return x, nil
}

// Det returns det(A) from the factors: Sign · Π U[i,i].
func (f *LUFactors) Det() float64 {
	n := f.U.r
	d := f.Sign
	for i := 0; i < n; i++ {
		d *= f.U.data[i*n+i]
	}

	return d
}

// Inverse computes A⁻¹ by solving A·x = eᵢ for each basis column.
// The input is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (see LU).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	f, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := f.U.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	e := make([]float64, n)
	var col, i int
	for col = 0; col < n; col++ {
		for i = range e {
			e[i] = 0
		}
		e[col] = 1.0
		x, err := f.Solve(e)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Det returns the determinant of a square matrix. A matrix that LU rejects as
// singular has determinant 0 and no error.
func Det(m Matrix, opts ...Option) (float64, error) {
	f, err := LU(m, opts...)
	if errors.Is(err, ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return f.Det(), nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
//
// Implementation:
//   - Stage 1: Validate symmetric square input within tol.
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order and
//     apply a Jacobi rotation, accumulating it into Q.
//   - Stage 3: Sort eigenpairs by ascending eigenvalue.
//
// Returns:
//   - []float64: eigenvalues, ascending.
//   - *Dense: Q whose column i is the unit eigenvector of eigenvalue i.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry,
//     ErrMatrixEigenFailed (max off-diagonal ≥ tol after maxIter rotations).
//
// Complexity:
//   - Time O(maxIter * n), Space O(n^2).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := src.r
	A := src.Clone().(*Dense) // working copy
	Q, _ := NewIdentity(n)    // orthogonal accumulator

	var (
		iter, i, j, p, q   int
		maxOff, off        float64
		app, aqq, apq      float64
		aip, aiq, qip, qiq float64
		theta, t, c, s     float64
	)
	for iter = 0; iter < maxIter; iter++ {
		// Find pivot (p,q) maximizing |A[p,q]|.
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off = math.Abs(A.data[i*n+j]); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		app = A.data[p*n+p]
		aqq = A.data[q*n+q]
		apq = A.data[p*n+q]
		// θ = (aqq−app)/(2*apq); t = sign(θ) / (|θ|+√(θ²+1))
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = A.data[i*n+p]
			aiq = A.data[i*n+q]
			A.data[i*n+p], A.data[p*n+i] = c*aip-s*aiq, c*aip-s*aiq
			A.data[i*n+q], A.data[q*n+i] = s*aip+c*aiq, s*aip+c*aiq
		}
		A.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		A.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		A.data[p*n+q], A.data[q*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip = Q.data[i*n+p]
			qiq = Q.data[i*n+q]
			Q.data[i*n+p] = c*qip - s*qiq
			Q.data[i*n+q] = s*qip + c*qiq
		}
	}

	// Final convergence check.
	maxOff = 0
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			maxOff = math.Max(maxOff, math.Abs(A.data[i*n+j]))
		}
	}
	if maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	// Sort eigenpairs ascending; stable keeps the rotation order on ties.
	order := make([]int, n)
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return A.data[order[x]*n+order[x]] < A.data[order[y]*n+order[y]]
	})
	eigs := make([]float64, n)
	vecs, _ := NewDense(n, n)
	for j = 0; j < n; j++ {
		eigs[j] = A.data[order[j]*n+order[j]]
		for i = 0; i < n; i++ {
			vecs.data[i*n+j] = Q.data[i*n+order[j]]
		}
	}

	return eigs, vecs, nil
}
