// SPDX-License-Identifier: MIT

package binning

import (
	"fmt"
	"math"
)

// Bound is a closed interval [Lo, Hi] along one local axis.
type Bound struct {
	Lo, Hi float64
}

// Symmetric returns (−width/2, width/2).
func Symmetric(width float64) Bound {
	return Bound{Lo: -width / 2, Hi: width / 2}
}

// Width returns Hi − Lo.
func (b Bound) Width() float64 { return b.Hi - b.Lo }

// Mid returns the interval midpoint.
func (b Bound) Mid() float64 { return (b.Lo + b.Hi) / 2 }

// Contains reports Lo ≤ x ≤ Hi.
func (b Bound) Contains(x float64) bool { return x >= b.Lo && x <= b.Hi }

func (b Bound) valid() bool {
	return !math.IsNaN(b.Lo) && !math.IsNaN(b.Hi) &&
		!math.IsInf(b.Lo, 0) && !math.IsInf(b.Hi, 0) && b.Lo <= b.Hi
}

// Axis is one parsed binning axis: its bin centers and the common step.
type Axis struct {
	Centers []float64
	Step    float64
}

// NewAxis parses one axis specification.
//
// Rules:
//   - exactly two values are a [lo, hi] pair: one center at the midpoint, and
//     the step is the full width hi − lo;
//   - three or more values are the centers themselves; every consecutive
//     difference must match the first one within the spacing tolerance, and
//     that first difference is the step.
//
// Errors:
//   - ErrInvalidAxis: fewer than two values, non-finite values, zero step.
//   - ErrInvalidBounds: a pair with hi < lo.
//   - ErrNonUniformSpacing: unequal differences.
//
// Complexity: O(n).
func NewAxis(values []float64, opts ...Option) (Axis, error) {
	o := gatherOptions(opts...)

	return parseAxis(values, o.rtol, o.atol)
}

func parseAxis(values []float64, rtol, atol float64) (Axis, error) {
	if len(values) < 2 {
		return Axis{}, fmt.Errorf("%d values: %w", len(values), ErrInvalidAxis)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Axis{}, fmt.Errorf("value %d is %g: %w", i, v, ErrInvalidAxis)
		}
	}

	if len(values) == 2 {
		b := Bound{Lo: values[0], Hi: values[1]}
		if !b.valid() {
			return Axis{}, fmt.Errorf("pair [%g, %g]: %w", b.Lo, b.Hi, ErrInvalidBounds)
		}
		if b.Width() == 0 {
			return Axis{}, fmt.Errorf("pair [%g, %g] has zero width: %w", b.Lo, b.Hi, ErrInvalidAxis)
		}
		return Axis{Centers: []float64{b.Mid()}, Step: b.Width()}, nil
	}

	step := values[1] - values[0]
	if step == 0 {
		return Axis{}, fmt.Errorf("zero step: %w", ErrInvalidAxis)
	}
	limit := atol + rtol*math.Abs(step)
	for i := 2; i < len(values); i++ {
		if d := values[i] - values[i-1]; math.Abs(d-step) > limit {
			return Axis{}, fmt.Errorf("difference %g at %d, want %g: %w", d, i, step, ErrNonUniformSpacing)
		}
	}
	centers := make([]float64, len(values))
	copy(centers, values)

	return Axis{Centers: centers, Step: step}, nil
}

// Width returns |Step|, the full extent of one bin along the axis.
func (a Axis) Width() float64 { return math.Abs(a.Step) }

// Linspace returns n evenly spaced values from lo to hi inclusive.
// n < 2 returns []float64{lo} for n == 1 and nil otherwise.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi

	return out
}
