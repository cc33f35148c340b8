// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/katalvlaran/kfe/binarize"
	"github.com/katalvlaran/kfe/codedist"
	"github.com/katalvlaran/kfe/kfe"
	"github.com/katalvlaran/kfe/matrix"
	"github.com/katalvlaran/kfe/metrics"
	"github.com/katalvlaran/kfe/refvec"
)

// Result bundles every intermediate and final product of one run.
// Containers are freshly allocated per run and must be treated as read-only
// once published through a Session.
type Result struct {
	Params Params

	Binary *matrix.Cube[uint8] // X
	Lower  *matrix.Dense       // NDK
	Upper  *matrix.Dense       // VDK

	Average   *matrix.Dense       // AVG
	Reference *matrix.Grid[uint8] // xm

	Distances  *matrix.Cube[int] // SK
	Separation *matrix.Grid[int] // reference-to-reference distances

	Metrics   [][]metrics.RadiusMetric // scored, one radius-ordered list per class
	MaxRadius []int
}

// Func is the signature of Recompute; sessions accept an alternative for tests.
type Func func(Y *matrix.Cube[float64], p Params) (Result, error)

// Recompute runs the whole training pipeline on Y with parameters p.
//
// Errors:
//   - ErrInvalidParams (wrapped) before any work is done.
//   - any stage error, wrapped with the stage name.
//
// Complexity: O(m²·N·n).
func Recompute(Y *matrix.Cube[float64], p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, fmt.Errorf("Recompute: %w", err)
	}

	bin, err := binarize.Binarize(Y, float64(p.Delta))
	if err != nil {
		return Result{}, fmt.Errorf("Recompute: binarize: %w", err)
	}
	ref, err := refvec.Build(bin.Binary, p.Selec)
	if err != nil {
		return Result{}, fmt.Errorf("Recompute: refvec: %w", err)
	}
	sk, err := codedist.Compute(bin.Binary, ref.Reference)
	if err != nil {
		return Result{}, fmt.Errorf("Recompute: codedist: %w", err)
	}
	rep, err := metrics.Compute(sk, ref.Reference)
	if err != nil {
		return Result{}, fmt.Errorf("Recompute: metrics: %w", err)
	}

	return Result{
		Params:     p,
		Binary:     bin.Binary,
		Lower:      bin.Lower,
		Upper:      bin.Upper,
		Average:    ref.Average,
		Reference:  ref.Reference,
		Distances:  sk,
		Separation: rep.Separation,
		Metrics:    kfe.ScoreAll(rep.ByClass),
		MaxRadius:  rep.MaxRadius,
	}, nil
}

// Classes returns the number of classes the result covers.
func (r Result) Classes() int { return len(r.Metrics) }
