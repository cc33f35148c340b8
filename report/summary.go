// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/kfe/optimize"
	"github.com/katalvlaran/kfe/pipeline"
)

// Side is one column of the before/after comparison.
type Side struct {
	Params   pipeline.Params `json:"params"`
	Shannon  optimize.Best   `json:"shannon"`
	Kullback optimize.Best   `json:"kullback"`
}

// ClassSummary compares one class before and after optimization.
type ClassSummary struct {
	Class  int  `json:"class"`
	Before Side `json:"before"`
	After  Side `json:"after"`
}

// Summary is the JSON-safe digest of an optimize.Result. Scores are nil
// when no class had a reliable radius.
type Summary struct {
	Original       pipeline.Params `json:"original"`
	Optimized      pipeline.Params `json:"optimized"`
	OriginalScore  *float64        `json:"original_score"`
	OptimizedScore *float64        `json:"optimized_score"`
	Gain           *float64        `json:"gain"`
	Stats          optimize.Stats  `json:"stats"`
	Classes        []ClassSummary  `json:"classes"`
}

// Finite returns &v, or nil for NaN and ±Inf.
func Finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}

func side(s optimize.Snapshot, k int) Side {
	out := Side{Params: s.Params}
	if k < len(s.BestShannon) {
		out.Shannon = s.BestShannon[k]
	}
	if k < len(s.BestKullback) {
		out.Kullback = s.BestKullback[k]
	}

	return out
}

// Classes builds the per-class comparison of res.
func Classes(res optimize.Result) []ClassSummary {
	n := max(len(res.Original.BestShannon), len(res.Optimized.BestShannon))
	out := make([]ClassSummary, n)
	for k := range out {
		out[k] = ClassSummary{Class: k, Before: side(res.Original, k), After: side(res.Optimized, k)}
	}

	return out
}

// Summarize digests res.
func Summarize(res optimize.Result) Summary {
	return Summary{
		Original:       res.Original.Params,
		Optimized:      res.Optimized.Params,
		OriginalScore:  Finite(res.Original.Score()),
		OptimizedScore: Finite(res.Optimized.Score()),
		Gain:           Finite(res.Gain),
		Stats:          res.Stats,
		Classes:        Classes(res),
	}
}

func bestValue(b optimize.Best) string {
	if !b.OK {
		return "-"
	}

	return strconv.FormatFloat(b.Value, 'f', 4, 64)
}

func bestRadius(b optimize.Best) string {
	if !b.OK {
		return "-"
	}

	return strconv.Itoa(b.Radius)
}

// comparison returns the parameter/before/after lines of one class.
func comparison(c ClassSummary) [][3]string {
	return [][3]string{
		{"delta", strconv.Itoa(c.Before.Params.Delta), strconv.Itoa(c.After.Params.Delta)},
		{"selec", strconv.FormatFloat(c.Before.Params.Selec, 'f', 2, 64), strconv.FormatFloat(c.After.Params.Selec, 'f', 2, 64)},
		{"kfe_shannon", bestValue(c.Before.Shannon), bestValue(c.After.Shannon)},
		{"radius_shannon", bestRadius(c.Before.Shannon), bestRadius(c.After.Shannon)},
		{"kfe_kullback", bestValue(c.Before.Kullback), bestValue(c.After.Kullback)},
		{"radius_kullback", bestRadius(c.Before.Kullback), bestRadius(c.After.Kullback)},
	}
}

// WriteSummaryCSV writes class,parameter,before,after lines.
func WriteSummaryCSV(w io.Writer, classes []ClassSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"class", "parameter", "before", "after"}); err != nil {
		return fmt.Errorf("WriteSummaryCSV: %w", err)
	}
	for _, c := range classes {
		for _, line := range comparison(c) {
			if err := cw.Write([]string{strconv.Itoa(c.Class), line[0], line[1], line[2]}); err != nil {
				return fmt.Errorf("WriteSummaryCSV: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteSummaryCSV: %w", err)
	}

	return nil
}
