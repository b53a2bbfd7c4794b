// SPDX-License-Identifier: MIT
package lattice_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/binsampler/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBasisFromCell_Cubic(t *testing.T) {
	b, err := lattice.NewBasisFromCell(4, 4, 4, 90, 90, 90)
	require.NoError(t, err)

	k := 2 * math.Pi / 4
	B := b.ReciprocalVectors()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = k
			}
			assert.InDelta(t, want, B[i][j], 1e-12)
		}
	}
	mag, err := lattice.Magnitude(b, lattice.Vec3{1, 1, 0})
	require.NoError(t, err)
	assert.InDelta(t, k*math.Sqrt(2), mag, 1e-12)
}

func TestNewBasisFromCell_Duality(t *testing.T) {
	// a*ᵢ · aⱼ = 2π δᵢⱼ for a triclinic cell.
	const a, b, c = 3.1, 4.2, 5.3
	const alpha, beta, gamma = 80.0, 95.0, 110.0
	basis, err := lattice.NewBasisFromCell(a, b, c, alpha, beta, gamma)
	require.NoError(t, err)
	B := basis.ReciprocalVectors()

	rad := math.Pi / 180
	cy := (math.Cos(alpha*rad) - math.Cos(beta*rad)*math.Cos(gamma*rad)) / math.Sin(gamma*rad)
	direct := lattice.MatFromColumns(
		lattice.Vec3{a, 0, 0},
		lattice.Vec3{b * math.Cos(gamma*rad), b * math.Sin(gamma*rad), 0},
		lattice.Vec3{c * math.Cos(beta*rad), c * cy, c * math.Sqrt(1-math.Cos(beta*rad)*math.Cos(beta*rad)-cy*cy)},
	)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 2 * math.Pi
			}
			assert.InDelta(t, want, B.Col(i).Dot(direct.Col(j)), 1e-9)
		}
	}
}

func TestNewBasisFromCell_Invalid(t *testing.T) {
	tests := []struct {
		name                   string
		a, b, c, al, be, gamma float64
	}{
		{"zero length", 0, 1, 1, 90, 90, 90},
		{"flat angle", 1, 1, 1, 180, 90, 90},
		{"unclosed", 1, 1, 1, 30, 30, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lattice.NewBasisFromCell(tc.a, tc.b, tc.c, tc.al, tc.be, tc.gamma)
			require.ErrorIs(t, err, lattice.ErrInvalidCell)
		})
	}
}

func TestAbsoluteRLURoundTrip(t *testing.T) {
	basis, err := lattice.NewBasisFromCell(3, 3, 5, 90, 90, 120)
	require.NoError(t, err)

	q := lattice.Vec3{1, -2, 0.5}
	k, err := lattice.RLUToAbsolute(basis, q)
	require.NoError(t, err)
	back, err := lattice.AbsoluteToRLU(basis, k)
	require.NoError(t, err)
	assertVecClose(t, q, back, 1e-9)

	_, err = lattice.AbsoluteToRLU(lattice.Basis{}, k)
	require.ErrorIs(t, err, lattice.ErrSingularLattice)
	_, err = lattice.AbsoluteToRLU(nil, k)
	require.ErrorIs(t, err, lattice.ErrNilCrystal)
}

func TestLabMatrix(t *testing.T) {
	basis := lattice.Basis{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}}
	f, err := lattice.NewFrameFromColumns(lattice.Vec3{1, 1, 0}, lattice.Vec3{1, -1, 0}, lattice.Vec3{0, 0, 1})
	require.NoError(t, err)

	m, err := lattice.LabMatrix(basis, f)
	require.NoError(t, err)
	assertVecClose(t, lattice.Vec3{2, 2, 0}, m.Col(0), 0)
	assertVecClose(t, lattice.Vec3{0, 0, 2}, m.Col(2), 0)
}

func TestCrystalTransforms_NilCrystal(t *testing.T) {
	q := lattice.Vec3{1, 0, 0}
	tests := []struct {
		name string
		call func() error
	}{
		{"RLUToAbsolute", func() error { _, err := lattice.RLUToAbsolute(nil, q); return err }},
		{"AbsoluteToRLU", func() error { _, err := lattice.AbsoluteToRLU(nil, q); return err }},
		{"Magnitude", func() error { _, err := lattice.Magnitude(nil, q); return err }},
		{"LabMatrix", func() error { _, err := lattice.LabMatrix(nil, lattice.IdentityFrame()); return err }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				require.ErrorIs(t, tc.call(), lattice.ErrNilCrystal)
			})
		})
	}
}
