// SPDX-License-Identifier: MIT

package binning

import (
	"fmt"
	"math"

	"github.com/katalvlaran/binsampler/lattice"
)

const opNewBinSpec = "NewBinSpec"

// BinSpec is the shape of one bin: a crystal, a direction frame, the bounds
// of the bin along each local axis and its energy width.
//
// The local → absolute map B·F and its inverse are computed at construction
// from the crystal's reciprocal vectors at that moment.
type BinSpec struct {
	crystal lattice.Crystal
	frame   lattice.Frame
	bounds  [3]Bound
	deltaE  float64

	recip  lattice.Mat3 // B at construction
	lab    lattice.Mat3 // B·F: local → absolute
	labInv lattice.Mat3 // (B·F)⁻¹: absolute → local
}

// NewBinSpec validates and builds a BinSpec.
//
// Errors:
//   - ErrNilCrystal for a nil crystal.
//   - ErrInvalidBounds for lo > hi, non-finite bounds or deltaE < 0.
//   - ErrSingularLattice when B·F is not invertible.
func NewBinSpec(c lattice.Crystal, frame lattice.Frame, bounds [3]Bound, deltaE float64) (*BinSpec, error) {
	if c == nil {
		return nil, fmt.Errorf("%s: %w", opNewBinSpec, ErrNilCrystal)
	}
	for i, b := range bounds {
		if !b.valid() {
			return nil, fmt.Errorf("%s: axis %d [%g, %g]: %w", opNewBinSpec, i, b.Lo, b.Hi, ErrInvalidBounds)
		}
	}
	if math.IsNaN(deltaE) || math.IsInf(deltaE, 0) || deltaE < 0 {
		return nil, fmt.Errorf("%s: deltaE %g: %w", opNewBinSpec, deltaE, ErrInvalidBounds)
	}

	lab, err := lattice.LabMatrix(c, frame)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", opNewBinSpec, err, ErrSingularLattice)
	}
	labInv, err := lab.Inverse()
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", opNewBinSpec, err, ErrSingularLattice)
	}

	return &BinSpec{
		crystal: c,
		frame:   frame,
		bounds:  bounds,
		deltaE:  deltaE,
		recip:   c.ReciprocalVectors(),
		lab:     lab,
		labInv:  labInv,
	}, nil
}

// NewSymmetricBinSpec builds a BinSpec whose bounds are (−Δ/2, Δ/2) for the
// given per-axis widths.
func NewSymmetricBinSpec(c lattice.Crystal, frame lattice.Frame, widths lattice.Vec3, deltaE float64) (*BinSpec, error) {
	return NewBinSpec(c, frame, [3]Bound{Symmetric(widths[0]), Symmetric(widths[1]), Symmetric(widths[2])}, deltaE)
}

// Crystal returns the crystal the BinSpec was built with.
func (s *BinSpec) Crystal() lattice.Crystal { return s.crystal }

// Frame returns the direction frame.
func (s *BinSpec) Frame() lattice.Frame { return s.frame }

// Bounds returns the local-coordinate bounds.
func (s *BinSpec) Bounds() [3]Bound { return s.bounds }

// DeltaE returns the energy width.
func (s *BinSpec) DeltaE() float64 { return s.deltaE }

// LabMatrix returns B·F, mapping local coordinates to absolute space.
func (s *BinSpec) LabMatrix() lattice.Mat3 { return s.lab }

// InverseLabMatrix returns (B·F)⁻¹, mapping absolute space to local coordinates.
func (s *BinSpec) InverseLabMatrix() lattice.Mat3 { return s.labInv }

// LabExtrema returns the absolute-space bounding box of the bin placed at the
// origin: per Cartesian axis, the min/max over its eight corners.
func (s *BinSpec) LabExtrema() [3]Bound {
	return ExtremaOfBox(s.lab, s.bounds)
}

// Volume returns the bin volume in local units: the product of the widths.
func (s *BinSpec) Volume() float64 {
	return s.bounds[0].Width() * s.bounds[1].Width() * s.bounds[2].Width()
}

// Bin is a BinSpec placed at an RLU center and an energy center.
type Bin struct {
	spec   *BinSpec
	center lattice.Vec3
	energy float64
}

// NewBin places spec at center (RLU) and energy. A single bin with no
// surrounding grid is built this way.
func NewBin(spec *BinSpec, center lattice.Vec3, energy float64) Bin {
	return Bin{spec: spec, center: center, energy: energy}
}

// Spec returns the bin shape.
func (b Bin) Spec() *BinSpec { return b.spec }

// Center returns the RLU center.
func (b Bin) Center() lattice.Vec3 { return b.center }

// Energy returns the energy center.
func (b Bin) Energy() float64 { return b.energy }

// EnergyBound returns [E − ΔE/2, E + ΔE/2].
func (b Bin) EnergyBound() Bound {
	return Bound{Lo: b.energy - b.spec.deltaE/2, Hi: b.energy + b.spec.deltaE/2}
}

// LabCenter returns the center in absolute space, using the reciprocal
// vectors captured when the BinSpec was built.
func (b Bin) LabCenter() lattice.Vec3 {
	return b.spec.recip.MulVec(b.center)
}

// Corners returns the eight RLU corners of the bin.
func (b Bin) Corners() [8]lattice.Vec3 {
	return CornersOfParallelepiped(b.spec.frame.Matrix(), b.spec.bounds, b.center)
}

// Contains reports whether q (RLU) lies inside the bin, boundaries included.
func (b Bin) Contains(q lattice.Vec3) bool {
	return insideLocal(b.spec.frame.ToLocal(q).Sub(b.spec.frame.ToLocal(b.center)), b.spec.bounds)
}

// Filter returns the points of qs inside the bin, in input order.
func (b Bin) Filter(qs []lattice.Vec3) []lattice.Vec3 {
	idx := FindPointsInBin(b.center, b.spec.frame, b.spec.bounds, qs)
	out := make([]lattice.Vec3, len(idx))
	for i, k := range idx {
		out[i] = qs[k]
	}

	return out
}
