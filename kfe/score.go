// SPDX-License-Identifier: MIT

package kfe

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/kfe/metrics"
)

// Criterion selects which efficiency score drives a comparison.
type Criterion int

const (
	// ShannonCriterion ranks radii by the Shannon efficiency.
	ShannonCriterion Criterion = iota
	// KullbackCriterion ranks radii by the Kullback efficiency.
	KullbackCriterion
)

// String returns the lowercase criterion name.
func (c Criterion) String() string {
	switch c {
	case ShannonCriterion:
		return "shannon"
	case KullbackCriterion:
		return "kullback"
	default:
		return fmt.Sprintf("criterion(%d)", int(c))
	}
}

// Value extracts the criterion's score from a scored record.
func (c Criterion) Value(m metrics.RadiusMetric) float64 {
	switch c {
	case ShannonCriterion:
		return m.Shannon
	case KullbackCriterion:
		return m.Kullback
	default:
		return math.NaN()
	}
}

// ParseCriterion maps "shannon"/"kullback" (case-insensitive) to a Criterion.
func ParseCriterion(s string) (Criterion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shannon", "e":
		return ShannonCriterion, nil
	case "kullback", "k":
		return KullbackCriterion, nil
	}

	return 0, fmt.Errorf("ParseCriterion(%q): %w", s, ErrUnknownCriterion)
}

// Score returns a new list holding copies of list with both efficiency
// scores attached. The input is not modified.
// Complexity: O(len(list)).
func Score(list []metrics.RadiusMetric) []metrics.RadiusMetric {
	out := make([]metrics.RadiusMetric, len(list))
	var (
		acc Carry
		k   float64
	)
	for i, m := range list {
		k, acc = KullbackStep(acc, m)
		out[i] = m.WithScores(Shannon(m), k)
	}

	return out
}

// ScoreAll applies Score to every class independently.
func ScoreAll(byClass [][]metrics.RadiusMetric) [][]metrics.RadiusMetric {
	out := make([][]metrics.RadiusMetric, len(byClass))
	for k, list := range byClass {
		out[k] = Score(list)
	}

	return out
}

// Best returns the largest finite value of c among the reliable records of
// list; ok is false when none qualifies.
func Best(list []metrics.RadiusMetric, c Criterion) (float64, bool) {
	_, v, ok := metrics.BestRadius(list, c.Value)

	return v, ok
}

// BestAt is Best that also reports the radius holding the value.
func BestAt(list []metrics.RadiusMetric, c Criterion) (radius int, value float64, ok bool) {
	return metrics.BestRadius(list, c.Value)
}
