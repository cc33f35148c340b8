// SPDX-License-Identifier: MIT

package kfe

import (
	"math"

	"github.com/katalvlaran/kfe/metrics"
)

// term is the x/d·log2(x/d) contribution with its degenerate cases folded to 0.
func term(x, d float64) float64 {
	if d <= 0 {
		return 0
	}
	r := x / d
	if r <= 0 {
		return 0
	}
	if r > 1 {
		r = 1
	}

	return r * math.Log2(r)
}

// Shannon returns the Shannon efficiency of m. It never fails: zero
// denominators and non-positive ratios contribute nothing.
// Complexity: O(1).
func Shannon(m metrics.RadiusMetric) float64 {
	rejected := m.Alpha + m.D2 // everything outside the ball
	accepted := m.D1 + m.Beta  // everything inside the ball

	return 1 + 0.5*(term(m.Alpha, rejected)+term(m.D2, rejected)+
		term(m.D1, accepted)+term(m.Beta, accepted))
}
