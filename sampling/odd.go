// SPDX-License-Identifier: MIT

package sampling

import "math"

// OddUp returns n − (n mod 2) + 1: n+1 for even n, n for odd n.
func OddUp(n int) int { return n - mod2(n) + 1 }

// OddDown returns n + (n mod 2) − 1: n−1 for even n, n for odd n.
func OddDown(n int) int { return n + mod2(n) - 1 }

// mod2 is the non-negative remainder of n/2.
func mod2(n int) int { return ((n % 2) + 2) % 2 }

// halfCount returns k such that the symmetric index range −k..k spans
// roughly extent/spacing points. Ratios round half to even.
func halfCount(extent, spacing float64, odd func(int) int) int {
	k := (odd(int(math.RoundToEven(extent/spacing))) - 1) / 2
	if k < 0 {
		return 0
	}

	return k
}

func validPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func validNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
