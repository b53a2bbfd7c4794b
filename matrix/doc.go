// Package matrix provides the small dense linear-algebra core used by the
// bin-geometry packages.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Kernels: Mul, MatVec, Transpose, LU (partial pivoting), Inverse, Det.
//   - Eigen, a Jacobi eigen-solver for real symmetric matrices (covariances).
//   - CenterColumns and Covariance for point-cloud statistics.
//   - Central validators and package-level sentinel errors (errors.Is friendly).
//
// All kernels are deterministic: fixed loop orders, no hidden state, inputs are
// never mutated. Matrices here are tiny (3×3 in practice) so clarity wins over
// blocking or SIMD tricks.
package matrix
