// SPDX-License-Identifier: MIT

package optimize

import (
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/katalvlaran/kfe/pipeline"
)

const (
	// DefaultTolerance is the minimum score improvement that moves the best pair.
	DefaultTolerance = 1e-6

	// sameSelec is the distance below which two selection levels are one pair.
	sameSelec = 1e-9
)

// Settings describe the candidate grid.
type Settings struct {
	DeltaCandidates []int     `json:"delta_candidates" yaml:"delta_candidates"`
	SelecCandidates []float64 `json:"selec_candidates" yaml:"selec_candidates"`
	Tolerance       float64   `json:"tolerance" yaml:"tolerance"`
}

// round2 rounds x to two decimals.
func round2(x float64) float64 { return math.Round(x*100) / 100 }

// DeltaRange returns lo, lo+step, …, ≤ hi. A non-positive step yields {lo}.
func DeltaRange(lo, hi, step int) []int {
	if step <= 0 || hi < lo {
		return []int{lo}
	}
	out := make([]int, 0, (hi-lo)/step+1)
	for d := lo; d <= hi; d += step {
		out = append(out, d)
	}

	return out
}

// SelecRange returns lo, lo+step, …, ≤ hi rounded to two decimals.
func SelecRange(lo, hi, step float64) []float64 {
	if step <= 0 || hi < lo || math.IsNaN(step) {
		return []float64{round2(lo)}
	}
	n := int(math.Floor((hi-lo)/step+sameSelec)) + 1
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, round2(lo+float64(i)*step))
	}

	return out
}

// DefaultSettings is the grid {0} ∪ 25..75 for delta and 0.25..0.75 (step
// 0.01) for selec, each joined with the current value.
func DefaultSettings(current pipeline.Params) Settings {
	deltas := append([]int{0}, DeltaRange(25, 75, 1)...)
	deltas = append(deltas, min(max(current.Delta, 0), pipeline.MaxDelta))

	selecs := SelecRange(0.25, 0.75, 0.01)
	if !math.IsNaN(current.Selec) {
		selecs = append(selecs, round2(min(max(current.Selec, 0), 1)))
	}

	return Settings{
		DeltaCandidates: deltas,
		SelecCandidates: selecs,
		Tolerance:       DefaultTolerance,
	}
}

// Normalize returns a copy of s with the current pair included, duplicates
// removed and both candidate lists sorted ascending. NaN selection levels
// are dropped.
func (s Settings) Normalize(current pipeline.Params) Settings {
	deltas := lo.Uniq(append(slices.Clone(s.DeltaCandidates), current.Delta))
	slices.Sort(deltas)

	selecs := lo.Filter(append(slices.Clone(s.SelecCandidates), current.Selec), func(v float64, _ int) bool {
		return !math.IsNaN(v)
	})
	selecs = lo.Uniq(selecs)
	slices.Sort(selecs)
	selecs = slices.CompactFunc(selecs, func(a, b float64) bool { return math.Abs(a-b) < sameSelec })

	return Settings{DeltaCandidates: deltas, SelecCandidates: selecs, Tolerance: s.Tolerance}
}

// Validate reports ErrInvalidSettings for a negative or NaN tolerance.
func (s Settings) Validate() error {
	if math.IsNaN(s.Tolerance) || s.Tolerance < 0 {
		return fmt.Errorf("tolerance %g: %w", s.Tolerance, ErrInvalidSettings)
	}

	return nil
}

// Planned is the size of the candidate grid.
func (s Settings) Planned() int { return len(s.DeltaCandidates) * len(s.SelecCandidates) }
