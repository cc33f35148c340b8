// SPDX-License-Identifier: MIT

package optimize

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/kfe/internal/logger"
	"github.com/katalvlaran/kfe/pipeline"
)

const component = "optimize"

// Session is the part of *pipeline.Session the optimizer drives.
type Session interface {
	Loaded() int
	Params() pipeline.Params
	Evaluate(p pipeline.Params) (pipeline.Result, error)
	Apply(p pipeline.Params) (pipeline.Result, error)
}

var _ Session = (*pipeline.Session)(nil)

// Stats counts what happened to the candidate grid.
type Stats struct {
	Planned   int `json:"planned"`   // grid size after normalization
	Evaluated int `json:"evaluated"` // successful dry runs
	Skipped   int `json:"skipped"`   // pairs equal to the best at their turn
	Failed    int `json:"failed"`    // dry runs that returned an error
	Accepted  int `json:"accepted"`  // candidates that replaced the best
}

// Result is the outcome of a completed search.
type Result struct {
	Original  Snapshot `json:"original"`
	Optimized Snapshot `json:"optimized"`
	Gain      float64  `json:"gain"`
	Stats     Stats    `json:"stats"`
}

// Candidate describes one visited grid point; it is handed to the observer.
type Candidate struct {
	Params   pipeline.Params
	Score    float64 // NaN when Err != nil
	Err      error
	Accepted bool
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l logger.Logger) Option {
	return func(o *Optimizer) { o.log = logger.OrNop(l) }
}

// WithObserver registers fn to be called for every evaluated or failed
// candidate, in sweep order.
func WithObserver(fn func(Candidate)) Option {
	return func(o *Optimizer) { o.observe = fn }
}

// Optimizer runs the sequential grid search. It holds no per-run state and
// may be reused.
type Optimizer struct {
	log     logger.Logger
	observe func(Candidate)
}

// New returns an Optimizer.
func New(opts ...Option) *Optimizer {
	o := &Optimizer{log: logger.Nop()}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

func (o *Optimizer) notify(c Candidate) {
	if o.observe != nil {
		o.observe(c)
	}
}

// improves reports whether score beats best by more than tol.
func improves(score, best, tol float64) bool {
	if math.IsNaN(score) || math.IsInf(score, -1) {
		return false
	}

	return score > best+tol
}

// Optimize searches settings' grid on sess. See the package documentation
// for the algorithm and the rollback guarantee.
//
// Errors:
//   - ErrInsufficientInput, ErrInvalidSettings: nothing was run.
//   - ErrPipeline (joined with the cause): the live pair cannot be run.
//   - ctx.Err() (wrapped): cancelled mid-sweep, live params are the original.
//   - ErrFinalApply, optionally joined with ErrRollback.
//
// Complexity: O(|deltas|·|selecs|) pipeline runs.
func (o *Optimizer) Optimize(ctx context.Context, sess Session, settings Settings) (Result, error) {
	if sess == nil || sess.Loaded() < 2 {
		return Result{}, fmt.Errorf("Optimize: %w", ErrInsufficientInput)
	}
	if err := settings.Validate(); err != nil {
		return Result{}, fmt.Errorf("Optimize: %w", err)
	}

	original := sess.Params()
	settings = settings.Normalize(original)

	// Stage 1: original snapshot.
	res, err := sess.Apply(original)
	if err != nil {
		return Result{}, fmt.Errorf("Optimize: %w: %w", ErrPipeline, err)
	}
	origSnap := NewSnapshot(res)

	stats := Stats{Planned: settings.Planned()}
	best, bestScore := original, origSnap.Score()
	o.log.Info(component, "search started", logger.Fields{
		"params":     original.String(),
		"score":      bestScore,
		"candidates": stats.Planned,
	})

	// Stage 2: sweep.
	for _, d := range settings.DeltaCandidates {
		for _, s := range settings.SelecCandidates {
			if err = ctx.Err(); err != nil {
				o.log.Warning(component, "search cancelled", logger.Fields{"evaluated": stats.Evaluated})
				return Result{}, fmt.Errorf("Optimize: %w", err)
			}
			if d == best.Delta && math.Abs(s-best.Selec) < sameSelec {
				stats.Skipped++
				continue
			}

			p := pipeline.Params{Delta: d, Selec: s}
			cand, evalErr := sess.Evaluate(p)
			if evalErr != nil {
				stats.Failed++
				o.log.Debug(component, "candidate failed", logger.Fields{"params": p.String(), "error": evalErr.Error()})
				o.notify(Candidate{Params: p, Score: math.NaN(), Err: evalErr})
				continue
			}
			stats.Evaluated++

			score := NewSnapshot(cand).Score()
			accepted := improves(score, bestScore, settings.Tolerance)
			if accepted {
				best, bestScore = p, score
				stats.Accepted++
				o.log.Debug(component, "candidate accepted", logger.Fields{"params": p.String(), "score": score})
			}
			o.notify(Candidate{Params: p, Score: score, Accepted: accepted})
		}
	}

	// Stage 3: confirm the best pair, restoring the original on failure.
	res, err = sess.Apply(best)
	if err != nil {
		finalErr := fmt.Errorf("Optimize: %w: %w", ErrFinalApply, err)
		o.log.Error(component, err, logger.Fields{"params": best.String(), "stage": "final apply"})
		if _, rbErr := sess.Apply(original); rbErr != nil {
			o.log.Error(component, rbErr, logger.Fields{"params": original.String(), "stage": "rollback"})
			return Result{}, errors.Join(finalErr, fmt.Errorf("Optimize: %w: %w", ErrRollback, rbErr))
		}

		return Result{}, finalErr
	}
	optSnap := NewSnapshot(res)

	out := Result{
		Original:  origSnap,
		Optimized: optSnap,
		Gain:      Gain(origSnap.Score(), optSnap.Score()),
		Stats:     stats,
	}
	o.log.Info(component, "search finished", logger.Fields{
		"params":    best.String(),
		"score":     optSnap.Score(),
		"gain":      out.Gain,
		"evaluated": stats.Evaluated,
		"failed":    stats.Failed,
		"accepted":  stats.Accepted,
	})

	return out, nil
}
