// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce a finite-only numeric policy on Set.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag for NewFromRows
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// NewFromRows copies a rectangular [][]float64 into a fresh Dense.
//
// Implementation:
//   - Stage 1: validate non-empty, rectangular input.
//   - Stage 2: copy row by row, rejecting NaN/±Inf.
//
// Errors:
//   - ErrInvalidDimensions for empty input or empty first row.
//   - ErrDimensionMismatch for ragged rows.
//   - ErrNaNInf for non-finite entries.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
			}
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for NaN/±Inf values.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: finite-only.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Row returns a copy of row i, or nil when i is out of range.
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// Col returns a copy of column j, or nil when j is out of range.
func (m *Dense) Col(j int) []float64 {
	if j < 0 || j >= m.c {
		return nil
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out
}

// String renders rows as lines with comma-separated values, for diagnostics.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// asDense returns m itself when it is already *Dense, otherwise a Dense copy
// read through the interface. Kernels use it to stay on the flat fast-path.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
