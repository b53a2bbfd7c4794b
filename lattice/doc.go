// Package lattice holds the coordinate machinery shared by the bin and
// sampler packages: 3-vectors and 3×3 matrices as plain values, the Crystal
// collaborator interface, direction frames and RLU ⇄ absolute conversions.
//
// Conventions:
//
//   - A Mat3 is row-major: m[i][j] is row i, column j.
//   - A Crystal's reciprocal matrix B has the reciprocal basis vectors as
//     columns, so absolute = B · rlu (Å⁻¹ with the 2π convention).
//   - A Frame F has the bin's local axes (in RLU) as columns, so rlu = F · local.
//
// Every type here is a value; copies never alias.
package lattice
