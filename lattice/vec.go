// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/binsampler/matrix"
)

// Vec3 is a 3-vector: RLU, absolute or local bin coordinates depending on context.
type Vec3 [3]float64

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

// Scale returns s·v.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{s * v[0], s * v[1], s * v[2]} }

// Dot returns the Euclidean inner product.
func (v Vec3) Dot(w Vec3) float64 { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }

// Norm returns the Euclidean length.
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Mat3 is a row-major 3×3 matrix value.
type Mat3 [3][3]float64

// Identity3 returns the 3×3 identity.
func Identity3() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// MatFromColumns assembles a Mat3 whose columns are a, b, c.
func MatFromColumns(a, b, c Vec3) Mat3 {
	var m Mat3
	for i := 0; i < 3; i++ {
		m[i][0], m[i][1], m[i][2] = a[i], b[i], c[i]
	}

	return m
}

// Mat3FromRows copies a [][]float64 that must be exactly 3×3.
func Mat3FromRows(rows [][]float64) (Mat3, error) {
	var m Mat3
	if len(rows) != 3 {
		return m, fmt.Errorf("Mat3FromRows: %d rows: %w", len(rows), ErrDimensionMismatch)
	}
	for i, r := range rows {
		if len(r) != 3 {
			return m, fmt.Errorf("Mat3FromRows: row %d has %d cols: %w", i, len(r), ErrDimensionMismatch)
		}
		copy(m[i][:], r)
	}

	return m, nil
}

// Vec3FromSlice copies a slice that must hold exactly 3 values.
func Vec3FromSlice(s []float64) (Vec3, error) {
	var v Vec3
	if len(s) != 3 {
		return v, fmt.Errorf("Vec3FromSlice: length %d: %w", len(s), ErrDimensionMismatch)
	}
	copy(v[:], s)

	return v, nil
}

// Col returns column j.
func (m Mat3) Col(j int) Vec3 { return Vec3{m[0][j], m[1][j], m[2][j]} }

// MulVec returns m·v. It stays inline for per-point loops, where a
// matrix.MatVec round trip would allocate.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Mul returns m·n, computed by matrix.Mul.
//
// Errors: matrix.ErrNaNInf for non-finite entries.
func (m Mat3) Mul(n Mat3) (Mat3, error) {
	a, err := m.Dense()
	if err != nil {
		return Mat3{}, fmt.Errorf("Mat3.Mul: %w", err)
	}
	b, err := n.Dense()
	if err != nil {
		return Mat3{}, fmt.Errorf("Mat3.Mul: %w", err)
	}
	p, err := matrix.Mul(a, b)
	if err != nil {
		return Mat3{}, fmt.Errorf("Mat3.Mul: %w", err)
	}

	return Mat3FromDense(p)
}

// Scale returns s·m.
func (m Mat3) Scale(s float64) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		out[i] = [3]float64(Vec3(m[i]).Scale(s))
	}

	return out
}

// Transpose returns mᵀ, computed by matrix.Transpose.
//
// Errors: matrix.ErrNaNInf for non-finite entries.
func (m Mat3) Transpose() (Mat3, error) {
	d, err := m.Dense()
	if err != nil {
		return Mat3{}, fmt.Errorf("Mat3.Transpose: %w", err)
	}
	t, err := matrix.Transpose(d)
	if err != nil {
		return Mat3{}, fmt.Errorf("Mat3.Transpose: %w", err)
	}

	return Mat3FromDense(t)
}

// Dense copies m into a matrix.Dense for the general kernels.
//
// Errors: matrix.ErrNaNInf for non-finite entries.
func (m Mat3) Dense() (*matrix.Dense, error) {
	d, err := matrix.NewFromRows([][]float64{m[0][:], m[1][:], m[2][:]})
	if err != nil {
		return nil, fmt.Errorf("Mat3.Dense: %w", err)
	}

	return d, nil
}

// Mat3FromDense copies a 3×3 matrix.Matrix back into a value.
func Mat3FromDense(d matrix.Matrix) (Mat3, error) {
	var m Mat3
	if d == nil || d.Rows() != 3 || d.Cols() != 3 {
		return m, fmt.Errorf("Mat3FromDense: %w", ErrDimensionMismatch)
	}
	var err error
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if m[i][j], err = d.At(i, j); err != nil {
				return m, fmt.Errorf("Mat3FromDense: %w", err)
			}
		}
	}

	return m, nil
}

// Inverse returns m⁻¹ computed by matrix.Inverse (LU with partial pivoting).
// A singular m yields an error wrapping matrix.ErrSingular, non-finite
// entries one wrapping matrix.ErrNaNInf.
func (m Mat3) Inverse() (Mat3, error) {
	d, err := m.Dense()
	if err != nil {
		return Mat3{}, fmt.Errorf("Mat3.Inverse: %w", err)
	}
	inv, err := matrix.Inverse(d)
	if err != nil {
		return Mat3{}, fmt.Errorf("Mat3.Inverse: %w", err)
	}

	return Mat3FromDense(inv)
}

// Det returns the determinant of m, computed by matrix.Det. A matrix that LU
// rejects as singular has determinant 0.
//
// Errors: matrix.ErrNaNInf for non-finite entries.
func (m Mat3) Det() (float64, error) {
	d, err := m.Dense()
	if err != nil {
		return 0, fmt.Errorf("Mat3.Det: %w", err)
	}

	return matrix.Det(d)
}
