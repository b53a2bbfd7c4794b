// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/binsampler/matrix"
)

// Crystal is the read-only view of a crystal model that bin geometry needs:
// the reciprocal lattice basis, one vector per column, in absolute units per RLU.
type Crystal interface {
	ReciprocalVectors() Mat3
}

// Basis is a fixed reciprocal basis; it satisfies Crystal.
type Basis Mat3

// ReciprocalVectors implements Crystal.
func (b Basis) ReciprocalVectors() Mat3 { return Mat3(b) }

// NewBasisFromCell returns the reciprocal basis of a direct cell with lengths
// a, b, c (Å) and angles alpha, beta, gamma (degrees). The direct vectors are
// placed with a along x and b in the xy plane; the reciprocal matrix is
// 2π·(A⁻¹)ᵀ so that a*·a = 2π.
//
// Errors: ErrInvalidCell for non-positive lengths/angles or angles that do not
// close a cell.
func NewBasisFromCell(a, b, c, alpha, beta, gamma float64) (Basis, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return Basis{}, fmt.Errorf("NewBasisFromCell: lengths (%g,%g,%g): %w", a, b, c, ErrInvalidCell)
	}
	for _, ang := range []float64{alpha, beta, gamma} {
		if ang <= 0 || ang >= 180 {
			return Basis{}, fmt.Errorf("NewBasisFromCell: angle %g: %w", ang, ErrInvalidCell)
		}
	}
	toRad := math.Pi / 180
	ca, cb, cg := math.Cos(alpha*toRad), math.Cos(beta*toRad), math.Cos(gamma*toRad)
	sg := math.Sin(gamma * toRad)

	cy := (ca - cb*cg) / sg
	cz2 := 1 - cb*cb - cy*cy
	if cz2 <= 0 {
		return Basis{}, fmt.Errorf("NewBasisFromCell: angles (%g,%g,%g): %w", alpha, beta, gamma, ErrInvalidCell)
	}
	direct := MatFromColumns(
		Vec3{a, 0, 0},
		Vec3{b * cg, b * sg, 0},
		Vec3{c * cb, c * cy, c * math.Sqrt(cz2)},
	)
	inv, err := direct.Inverse()
	if err != nil {
		return Basis{}, fmt.Errorf("NewBasisFromCell: %v: %w", err, ErrInvalidCell)
	}
	recip, err := inv.Transpose()
	if err != nil {
		return Basis{}, fmt.Errorf("NewBasisFromCell: %v: %w", err, ErrInvalidCell)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			recip[i][j] *= 2 * math.Pi
		}
	}

	return Basis(recip), nil
}

// RLUToAbsolute maps q (RLU) to absolute space: B·q.
//
// Errors: ErrNilCrystal, matrix.ErrNaNInf for non-finite reciprocal vectors.
func RLUToAbsolute(c Crystal, q Vec3) (Vec3, error) {
	if c == nil {
		return Vec3{}, fmt.Errorf("RLUToAbsolute: %w", ErrNilCrystal)
	}
	b, err := c.ReciprocalVectors().Dense()
	if err != nil {
		return Vec3{}, fmt.Errorf("RLUToAbsolute: %w", err)
	}
	k, err := matrix.MatVec(b, q[:])
	if err != nil {
		return Vec3{}, fmt.Errorf("RLUToAbsolute: %w", err)
	}

	return Vec3FromSlice(k)
}

// AbsoluteToRLU maps k (absolute) back to RLU by solving B·q = k with the
// pivoted LU of B.
//
// Errors: ErrNilCrystal, ErrSingularLattice.
func AbsoluteToRLU(c Crystal, k Vec3) (Vec3, error) {
	if c == nil {
		return Vec3{}, fmt.Errorf("AbsoluteToRLU: %w", ErrNilCrystal)
	}
	b, err := c.ReciprocalVectors().Dense()
	if err != nil {
		return Vec3{}, fmt.Errorf("AbsoluteToRLU: %v: %w", err, ErrSingularLattice)
	}
	f, err := matrix.LU(b)
	if err != nil {
		return Vec3{}, fmt.Errorf("AbsoluteToRLU: %v: %w", err, ErrSingularLattice)
	}
	q, err := f.Solve(k[:])
	if err != nil {
		return Vec3{}, fmt.Errorf("AbsoluteToRLU: %w", err)
	}

	return Vec3FromSlice(q)
}

// Magnitude returns |Q| in absolute units for q given in RLU.
//
// Errors: see RLUToAbsolute.
func Magnitude(c Crystal, q Vec3) (float64, error) {
	k, err := RLUToAbsolute(c, q)
	if err != nil {
		return 0, fmt.Errorf("Magnitude: %w", err)
	}

	return k.Norm(), nil
}

// LabMatrix returns B·F, the map from a frame's local coordinates to
// absolute space.
//
// Errors: ErrNilCrystal, matrix.ErrNaNInf for non-finite reciprocal vectors.
func LabMatrix(c Crystal, f Frame) (Mat3, error) {
	if c == nil {
		return Mat3{}, fmt.Errorf("LabMatrix: %w", ErrNilCrystal)
	}
	m, err := c.ReciprocalVectors().Mul(f.Matrix())
	if err != nil {
		return Mat3{}, fmt.Errorf("LabMatrix: %w", err)
	}

	return m, nil
}
