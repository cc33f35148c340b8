// SPDX-License-Identifier: MIT

package metrics

import (
	"math"

	"github.com/katalvlaran/kfe/matrix"
)

// ReliabilityThreshold is the minimum D1 and D2 of a reliable radius.
const ReliabilityThreshold = 0.5

// RadiusMetric is the accuracy record of one class at one radius.
// It is a plain value; copies never alias.
type RadiusMetric struct {
	Radius int // Hamming radius of the acceptance ball, ≥ 1
	Class  int // class index k

	D1    float64 // K1 / SampleSize: own realizations accepted
	Alpha float64 // K2 / SampleSize: own realizations rejected (first-kind error)
	Beta  float64 // K3 / ForeignSampleSize: foreign realizations accepted (second-kind error)
	D2    float64 // K4 / ForeignSampleSize: foreign realizations rejected

	K1, K2, K3, K4 int // raw counts behind the fractions

	SampleSize        int // realization count n
	ForeignSampleSize int // n·(m−1); equals n for two classes

	Reliable bool // D1 ≥ 0.5 and D2 ≥ 0.5

	// Shannon and Kullback are NaN until scored (see package kfe).
	Shannon  float64
	Kullback float64
}

// WithScores returns a copy of m carrying the given efficiency scores.
func (m RadiusMetric) WithScores(shannon, kullback float64) RadiusMetric {
	m.Shannon = shannon
	m.Kullback = kullback

	return m
}

// Scored reports whether both scores have been attached.
func (m RadiusMetric) Scored() bool {
	return !math.IsNaN(m.Shannon) && !math.IsNaN(m.Kullback)
}

// IsReliable applies the reliability rule to a pair of fractions.
func IsReliable(d1, d2 float64) bool {
	return d1 >= ReliabilityThreshold && d2 >= ReliabilityThreshold
}

// Report is the AccuracyMetricsEngine output.
type Report struct {
	// ByClass holds one radius-ordered list per class (possibly empty).
	ByClass [][]RadiusMetric

	// MaxRadius is the widest radius evaluated per class: the Hamming distance
	// from the class reference vector to the nearest foreign one.
	MaxRadius []int

	// Separation is the m×m reference-to-reference distance table.
	Separation *matrix.Grid[int]
}

// Clone deep-copies the per-class lists and the separation table.
func (r Report) Clone() Report {
	out := Report{
		ByClass:    CloneLists(r.ByClass),
		MaxRadius:  append([]int(nil), r.MaxRadius...),
		Separation: r.Separation.Clone(),
	}

	return out
}

// CloneLists copies a per-class list set. Elements are values, so a shallow
// copy of every inner slice is a deep copy.
func CloneLists(byClass [][]RadiusMetric) [][]RadiusMetric {
	if byClass == nil {
		return nil
	}
	out := make([][]RadiusMetric, len(byClass))
	for k, list := range byClass {
		out[k] = append([]RadiusMetric(nil), list...)
	}

	return out
}

// BestRadius returns the radius holding the largest finite value among the
// reliable entries of list. Ties keep the smaller radius. ok is false when
// no entry qualifies.
// Complexity: O(len(list)).
func BestRadius(list []RadiusMetric, value func(RadiusMetric) float64) (radius int, best float64, ok bool) {
	best = math.NaN()
	for _, m := range list {
		if !m.Reliable {
			continue
		}
		v := value(m)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !ok || v > best {
			radius, best, ok = m.Radius, v, true
		}
	}

	return radius, best, ok
}
