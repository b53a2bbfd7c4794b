// SPDX-License-Identifier: MIT

package matrix

const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
)

// CenterColumns subtracts the per-column mean from every element.
//
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Column means in a fixed i→j pass.
//   - Stage 3: Centered copy; X is not mutated.
//
// Returns the centered copy and the column means (len = Cols).
// Zero-row input returns a zero-row copy and zero means.
//
// Errors: ErrNilMatrix.
//
// Complexity: Time O(r·c), Space O(r·c).
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	src, err := asDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	r, c := src.r, src.c
	means := make([]float64, c)
	out := &Dense{r: r, c: c, data: make([]float64, len(src.data))}
	if r == 0 {
		return out, means, nil
	}

	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			means[j] += src.data[i*c+j]
		}
	}
	for j = 0; j < c; j++ {
		means[j] /= float64(r)
	}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = src.data[i*c+j] - means[j]
		}
	}

	return out, means, nil
}

// Covariance returns the sample covariance of the columns of X,
// (Xcᵀ·Xc)/(r−1), together with the column means used for centering.
// Rows are observations, columns are variables. The result is symmetric by
// construction.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (fewer than two rows).
//
// Complexity: Time O(r·c²), Space O(c²).
func Covariance(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r, c := X.Rows(), X.Cols()
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	cov := &Dense{r: c, c: c, data: make([]float64, c*c)}
	inv := 1.0 / float64(r-1)
	var i, j, k int
	var sum float64
	for i = 0; i < c; i++ {
		for j = i; j < c; j++ {
			sum = ZeroSum
			for k = 0; k < r; k++ {
				sum += xc.data[k*c+i] * xc.data[k*c+j]
			}
			cov.data[i*c+j] = sum * inv
			cov.data[j*c+i] = cov.data[i*c+j]
		}
	}

	return cov, means, nil
}
