// SPDX-License-Identifier: MIT

package kfe

import (
	"math"

	"github.com/katalvlaran/kfe/metrics"
)

// epsilon bounds the error count below which a radius is treated as error-free.
const epsilon = math.SmallestNonzeroFloat64

// slack keeps the Kullback ratio positive when S equals 2n.
const slack = 0.01

// Carry is the Kullback fold accumulator: the last finite score of the
// class being scanned. The zero value is the start of a class.
type Carry struct {
	Last float64 // last finite score; meaningful only when OK
	OK   bool
}

// fallback is the value substituted for a degenerate radius.
func (c Carry) fallback() float64 {
	if c.OK {
		return c.Last
	}

	return 0
}

// KullbackStep scores one radius given the accumulator of the radii before
// it and returns the updated accumulator.
//
// Behavior:
//   - S = K2 + K3 ≤ ε                  → fallback
//   - 2n + 0.01 − S ≤ 0               → 0
//   - otherwise log2((2n+0.01−S)/S)·(n−S)/n, or fallback if not finite.
//
// Complexity: O(1).
func KullbackStep(acc Carry, m metrics.RadiusMetric) (float64, Carry) {
	fb := acc.fallback()
	n := float64(m.SampleSize)
	s := float64(m.K2 + m.K3)

	var score float64
	switch {
	case s <= epsilon:
		score = fb
	case 2*n+slack-s <= 0:
		score = 0
	default:
		score = math.Log2((2*n+slack-s)/s) * (n - s) / n
		if math.IsNaN(score) || math.IsInf(score, 0) {
			score = fb
		}
	}

	return score, Carry{Last: score, OK: true}
}

// KullbackScan folds KullbackStep over one class's radius-ordered list,
// starting from a fresh Carry.
// Complexity: O(len(list)).
func KullbackScan(list []metrics.RadiusMetric) []float64 {
	out := make([]float64, len(list))
	var acc Carry
	for i, m := range list {
		out[i], acc = KullbackStep(acc, m)
	}

	return out
}
