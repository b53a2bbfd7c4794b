// SPDX-License-Identifier: MIT

package binning

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/binsampler/lattice"
)

const opNewUniformBinning = "NewUniformBinning"

// Axes lists the four axis specifications of a uniform binning. Each entry is
// either the full list of centers (three or more, uniformly spaced) or a
// [lo, hi] pair; see NewAxis.
type Axes struct {
	U []float64 `json:"u" yaml:"u"`
	V []float64 `json:"v" yaml:"v"`
	W []float64 `json:"w" yaml:"w"`
	E []float64 `json:"e" yaml:"e"`
}

// UniformBinning is a uniform grid of bins sharing one BinSpec: a
// (Nu, Nv, Nw) array of RLU centers, an energy-center axis and the step
// vector [Δu, Δv, Δw, ΔE]. It is immutable; accessors return copies.
type UniformBinning struct {
	spec     *BinSpec
	shape    [3]int
	centers  []lattice.Vec3 // flat, offset = (i*Nv + j)*Nw + k
	energies []float64
	steps    [4]float64
}

// NewUniformBinning builds a uniform binning.
//
// Implementation:
//   - Stage 1: reject a nil crystal and a non-invertible direction matrix.
//   - Stage 2: parse the U, V, W, E axes (NewAxis rules).
//   - Stage 3: build the shared BinSpec with bounds (−Δ/2, Δ/2) and ΔE.
//   - Stage 4: map every (u, v, w) center triple through the frame into RLU.
//
// Errors:
//   - ErrNilCrystal, ErrSingularFrame, ErrSingularLattice,
//     ErrInvalidAxis, ErrInvalidBounds, ErrNonUniformSpacing.
//
// Complexity: O(Nu·Nv·Nw) time and memory.
func NewUniformBinning(c lattice.Crystal, directions lattice.Mat3, axes Axes, opts ...Option) (*UniformBinning, error) {
	o := gatherOptions(opts...)
	if c == nil {
		return nil, fmt.Errorf("%s: %w", opNewUniformBinning, ErrNilCrystal)
	}
	frame, err := lattice.NewFrame(directions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewUniformBinning, err)
	}

	var parsed [4]Axis
	for i, spec := range [4]struct {
		name   string
		values []float64
	}{{"U", axes.U}, {"V", axes.V}, {"W", axes.W}, {"E", axes.E}} {
		if parsed[i], err = parseAxis(spec.values, o.rtol, o.atol); err != nil {
			return nil, fmt.Errorf("%s: axis %s: %w", opNewUniformBinning, spec.name, err)
		}
	}

	widths := lattice.Vec3{parsed[0].Width(), parsed[1].Width(), parsed[2].Width()}
	spec, err := NewSymmetricBinSpec(c, frame, widths, parsed[3].Width())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewUniformBinning, err)
	}

	nu, nv, nw := len(parsed[0].Centers), len(parsed[1].Centers), len(parsed[2].Centers)
	centers := make([]lattice.Vec3, 0, nu*nv*nw)
	var i, j, k int
	for i = 0; i < nu; i++ {
		for j = 0; j < nv; j++ {
			for k = 0; k < nw; k++ {
				centers = append(centers, frame.ToRLU(lattice.Vec3{
					parsed[0].Centers[i], parsed[1].Centers[j], parsed[2].Centers[k],
				}))
			}
		}
	}

	ub := &UniformBinning{
		spec:     spec,
		shape:    [3]int{nu, nv, nw},
		centers:  centers,
		energies: parsed[3].Centers,
		steps:    [4]float64{parsed[0].Step, parsed[1].Step, parsed[2].Step, parsed[3].Step},
	}
	o.logger.Debug("binning: uniform binning built",
		slog.Int("nu", nu), slog.Int("nv", nv), slog.Int("nw", nw),
		slog.Int("ne", len(ub.energies)),
		slog.Any("steps", ub.steps))

	return ub, nil
}

// Spec returns the BinSpec shared by every bin of the grid.
func (u *UniformBinning) Spec() *BinSpec { return u.spec }

// Frame returns the shared direction frame.
func (u *UniformBinning) Frame() lattice.Frame { return u.spec.frame }

// Shape returns (Nu, Nv, Nw).
func (u *UniformBinning) Shape() (nu, nv, nw int) { return u.shape[0], u.shape[1], u.shape[2] }

// Len returns the number of spatial bins, Nu·Nv·Nw.
func (u *UniformBinning) Len() int { return len(u.centers) }

// Steps returns [Δu, Δv, Δw, ΔE].
func (u *UniformBinning) Steps() [4]float64 { return u.steps }

// Energies returns a copy of the energy centers.
func (u *UniformBinning) Energies() []float64 {
	out := make([]float64, len(u.energies))
	copy(out, u.energies)

	return out
}

// Center returns the RLU center of spatial bin (i, j, k).
// ok is false when an index is out of range.
func (u *UniformBinning) Center(i, j, k int) (c lattice.Vec3, ok bool) {
	if i < 0 || i >= u.shape[0] || j < 0 || j >= u.shape[1] || k < 0 || k >= u.shape[2] {
		return lattice.Vec3{}, false
	}

	return u.centers[(i*u.shape[1]+j)*u.shape[2]+k], true
}

// Centers returns a copy of the centers as a [Nu][Nv][Nw] array.
func (u *UniformBinning) Centers() [][][]lattice.Vec3 {
	out := make([][][]lattice.Vec3, u.shape[0])
	for i := range out {
		out[i] = make([][]lattice.Vec3, u.shape[1])
		for j := range out[i] {
			base := (i*u.shape[1] + j) * u.shape[2]
			out[i][j] = append([]lattice.Vec3(nil), u.centers[base:base+u.shape[2]]...)
		}
	}

	return out
}

// Bin returns bin (i, j, k) at energy index l. ok is false when any index
// is out of range.
func (u *UniformBinning) Bin(i, j, k, l int) (Bin, bool) {
	c, ok := u.Center(i, j, k)
	if !ok || l < 0 || l >= len(u.energies) {
		return Bin{}, false
	}

	return NewBin(u.spec, c, u.energies[l]), true
}

// Each calls fn for every spatial bin in u→v→w order and stops early when
// fn returns false.
func (u *UniformBinning) Each(fn func(i, j, k int, center lattice.Vec3) bool) {
	var i, j, k, off int
	for i = 0; i < u.shape[0]; i++ {
		for j = 0; j < u.shape[1]; j++ {
			for k = 0; k < u.shape[2]; k++ {
				if !fn(i, j, k, u.centers[off]) {
					return
				}
				off++
			}
		}
	}
}
