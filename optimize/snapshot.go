// SPDX-License-Identifier: MIT

package optimize

import (
	"math"

	"github.com/katalvlaran/kfe/kfe"
	"github.com/katalvlaran/kfe/metrics"
	"github.com/katalvlaran/kfe/pipeline"
)

// Best is the best reliable score of one class and the radius that holds it.
type Best struct {
	Value  float64 `json:"value"`
	Radius int     `json:"radius"`
	OK     bool    `json:"ok"` // false: no reliable, finite value in the class
}

// Snapshot is an immutable record of one run, detached from the Result it
// was taken from.
type Snapshot struct {
	Params       pipeline.Params          `json:"params"`
	Metrics      [][]metrics.RadiusMetric `json:"metrics"`
	MaxRadius    []int                    `json:"max_radius"`
	BestShannon  []Best                   `json:"best_shannon"`
	BestKullback []Best                   `json:"best_kullback"`
}

// NewSnapshot deep-copies the scored lists of res and extracts the per-class
// best values for both criteria.
func NewSnapshot(res pipeline.Result) Snapshot {
	lists := metrics.CloneLists(res.Metrics)
	s := Snapshot{
		Params:       res.Params,
		Metrics:      lists,
		MaxRadius:    append([]int(nil), res.MaxRadius...),
		BestShannon:  make([]Best, len(lists)),
		BestKullback: make([]Best, len(lists)),
	}
	for k, list := range lists {
		s.BestShannon[k] = bestOf(list, kfe.ShannonCriterion)
		s.BestKullback[k] = bestOf(list, kfe.KullbackCriterion)
	}

	return s
}

func bestOf(list []metrics.RadiusMetric, c kfe.Criterion) Best {
	r, v, ok := kfe.BestAt(list, c)
	if !ok {
		return Best{}
	}

	return Best{Value: v, Radius: r, OK: true}
}

// sum adds the qualifying values; −Inf when none qualifies.
func sum(bs []Best) float64 {
	total, found := 0.0, false
	for _, b := range bs {
		if b.OK {
			total += b.Value
			found = true
		}
	}
	if !found {
		return math.Inf(-1)
	}

	return total
}

// Score is the aggregate Shannon efficiency: the sum of every class's best
// reliable Shannon value, or −Inf when no class has one.
func (s Snapshot) Score() float64 { return sum(s.BestShannon) }

// TotalKullback is the Kullback counterpart of Score.
func (s Snapshot) TotalKullback() float64 { return sum(s.BestKullback) }

// Gain is optimized − original, defined as 0 when both are −Inf.
func Gain(original, optimized float64) float64 {
	if math.IsInf(original, -1) && math.IsInf(optimized, -1) {
		return 0
	}

	return optimized - original
}
