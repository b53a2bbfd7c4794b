// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/binsampler/matrix"
)

// Frame is a bin's direction frame: columns are the local axes (u, v, w)
// expressed in RLU. The inverse is computed once at construction, so a Frame
// obtained from NewFrame is always invertible. The zero Frame is not usable.
type Frame struct {
	dirs Mat3 // local → RLU
	inv  Mat3 // RLU → local
}

// NewFrame validates and stores a direction matrix.
//
// Singularity is judged relative to the largest entry of dirs: the pivoted
// LU rejects any pivot at or below matrix.DefaultEpsilon·max|dirs[i][j]|.
// Rescaling all axes together never changes the outcome, but axes whose
// lengths differ by about twelve orders of magnitude are rejected even when
// they are independent.
//
// Errors:
//   - ErrSingularFrame when the columns are linearly dependent or not finite.
func NewFrame(dirs Mat3) (Frame, error) {
	inv, err := dirs.Inverse()
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) || errors.Is(err, matrix.ErrNaNInf) {
			return Frame{}, fmt.Errorf("NewFrame: %v: %w", err, ErrSingularFrame)
		}
		return Frame{}, fmt.Errorf("NewFrame: %w", err)
	}

	return Frame{dirs: dirs, inv: inv}, nil
}

// NewFrameFromColumns builds a frame from three local axes given in RLU.
func NewFrameFromColumns(u, v, w Vec3) (Frame, error) {
	return NewFrame(MatFromColumns(u, v, w))
}

// NewFrameFromVectors builds a frame from a list of three RLU direction vectors,
// typically decoded from configuration.
//
// Errors: ErrDimensionMismatch, ErrSingularFrame.
func NewFrameFromVectors(vectors [][]float64) (Frame, error) {
	if len(vectors) != 3 {
		return Frame{}, fmt.Errorf("NewFrameFromVectors: %d vectors: %w", len(vectors), ErrDimensionMismatch)
	}
	var cols [3]Vec3
	var err error
	for i, v := range vectors {
		if cols[i], err = Vec3FromSlice(v); err != nil {
			return Frame{}, fmt.Errorf("NewFrameFromVectors: vector %d: %w", i, err)
		}
	}

	return NewFrameFromColumns(cols[0], cols[1], cols[2])
}

// IdentityFrame returns the frame whose local axes are the RLU axes.
func IdentityFrame() Frame {
	return Frame{dirs: Identity3(), inv: Identity3()}
}

// Matrix returns the local → RLU matrix.
func (f Frame) Matrix() Mat3 { return f.dirs }

// InverseMatrix returns the RLU → local matrix.
func (f Frame) InverseMatrix() Mat3 { return f.inv }

// Column returns local axis i in RLU, not normalized.
func (f Frame) Column(i int) Vec3 { return f.dirs.Col(i) }

// Unit returns local axis i normalized to unit length (RLU components).
func (f Frame) Unit(i int) Vec3 {
	c := f.dirs.Col(i)

	return c.Scale(1 / c.Norm())
}

// ToRLU maps local coordinates to RLU.
func (f Frame) ToRLU(local Vec3) Vec3 { return f.dirs.MulVec(local) }

// ToLocal maps RLU coordinates to local coordinates.
func (f Frame) ToLocal(q Vec3) Vec3 { return f.inv.MulVec(q) }
