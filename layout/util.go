// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"

	"golang.org/x/exp/constraints"
)

func max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// clamp restricts v to [lo, hi]. If lo > hi, lo wins.
func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if hi >= lo && v > hi {
		return hi
	}
	return v
}

// round rounds to the nearest integer, with halves rounding up.
func round(v float32) int {
	return int(math.Floor(float64(v) + .5))
}
