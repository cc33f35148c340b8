// SPDX-License-Identifier: MIT

package optimize_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/kfe/matrix"
	"github.com/katalvlaran/kfe/optimize"
	"github.com/katalvlaran/kfe/pipeline"
)

// synthetic4x4 is a deterministic two-class set with N = n = 4.
func synthetic4x4() *matrix.Cube[float64] {
	Y, _ := matrix.NewCube[float64](2, 4, 4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			_ = Y.Set(0, i, j, float64(40+20*i+3*j))
			_ = Y.Set(1, i, j, float64(200-15*i+7*((i*j)%3)))
		}
	}

	return Y
}

// separated2x2 scores 2 (both classes perfect) for small deltas and −Inf
// for delta 200, where both reference vectors become all ones.
func separated2x2() *matrix.Cube[float64] {
	Y, _ := matrix.CubeFrom([][][]float64{
		{{10, 10}, {10, 10}},
		{{0, 255}, {0, 255}},
	})

	return Y
}

// flakySession fails Apply whenever fail returns an error.
type flakySession struct {
	*pipeline.Session
	calls int
	fail  func(call int, p pipeline.Params) error
}

func (f *flakySession) Apply(p pipeline.Params) (pipeline.Result, error) {
	f.calls++
	if err := f.fail(f.calls, p); err != nil {
		return pipeline.Result{}, err
	}

	return f.Session.Apply(p)
}

var errInjected = errors.New("injected")

type OptimizerSuite struct {
	suite.Suite
	ctx context.Context
	opt *optimize.Optimizer
}

func (s *OptimizerSuite) SetupTest() {
	s.ctx = context.Background()
	s.opt = optimize.New()
}

func (s *OptimizerSuite) session(Y *matrix.Cube[float64], p pipeline.Params) *pipeline.Session {
	sess := pipeline.NewSession(pipeline.WithParams(p))
	s.Require().NoError(sess.Load(Y))

	return sess
}

// TestSingleCandidateIsIdentity: with the live pair as the only candidate
// the optimized snapshot equals the original and the gain is zero.
func (s *OptimizerSuite) TestSingleCandidateIsIdentity() {
	cur := pipeline.Params{Delta: 20, Selec: 0.5}
	sess := s.session(synthetic4x4(), cur)
	settings := optimize.Settings{
		DeltaCandidates: []int{cur.Delta},
		SelecCandidates: []float64{cur.Selec},
		Tolerance:       optimize.DefaultTolerance,
	}

	res, err := s.opt.Optimize(s.ctx, sess, settings)
	s.Require().NoError(err)
	s.Empty(cmp.Diff(res.Original, res.Optimized))
	s.Equal(0.0, res.Gain)
	s.Equal(optimize.Stats{Planned: 1, Skipped: 1}, res.Stats)
	s.Equal(cur, sess.Params())
}

// TestNeverRegresses runs the default grid on the 4×4 set.
func (s *OptimizerSuite) TestNeverRegresses() {
	sess := s.session(synthetic4x4(), pipeline.DefaultParams)
	settings := optimize.DefaultSettings(pipeline.DefaultParams)

	seen := 0
	opt := optimize.New(optimize.WithObserver(func(optimize.Candidate) { seen++ }))
	res, err := opt.Optimize(s.ctx, sess, settings)
	s.Require().NoError(err)

	orig, best := res.Original.Score(), res.Optimized.Score()
	s.True(best >= orig || (math.IsInf(best, -1) && math.IsInf(orig, -1)))
	s.GreaterOrEqual(res.Gain, 0.0)
	s.Equal(res.Optimized.Params, sess.Params())

	st := res.Stats
	s.Equal(52*51, st.Planned)
	s.Equal(st.Planned, st.Evaluated+st.Skipped+st.Failed)
	s.Equal(st.Evaluated+st.Failed, seen)

	live, ok := sess.Result()
	s.True(ok)
	s.Empty(cmp.Diff(res.Optimized, optimize.NewSnapshot(live)))
}

func (s *OptimizerSuite) TestImprovesAndKeepsEarliestTie() {
	start := pipeline.Params{Delta: 200, Selec: 0.5}
	sess := s.session(separated2x2(), start)
	settings := optimize.Settings{DeltaCandidates: []int{5, 6}, SelecCandidates: []float64{0.5}}

	var visited []optimize.Candidate
	opt := optimize.New(optimize.WithObserver(func(c optimize.Candidate) { visited = append(visited, c) }))
	res, err := opt.Optimize(s.ctx, sess, settings)
	s.Require().NoError(err)

	s.True(math.IsInf(res.Original.Score(), -1))
	s.Equal(2.0, res.Optimized.Score())
	s.True(math.IsInf(res.Gain, 1))
	s.Equal(pipeline.Params{Delta: 5, Selec: 0.5}, res.Optimized.Params)
	s.Equal(pipeline.Params{Delta: 5, Selec: 0.5}, sess.Params())
	s.Equal(optimize.Stats{Planned: 3, Evaluated: 3, Accepted: 1}, res.Stats)

	s.Require().Len(visited, 3)
	s.True(visited[0].Accepted)
	s.False(visited[1].Accepted, "equal score does not replace the earlier pair")
	s.Equal(1, res.Optimized.BestShannon[1].Radius)
}

func (s *OptimizerSuite) TestFailedCandidatesAreSkipped() {
	cur := pipeline.Params{Delta: 5, Selec: 0.5}
	sess := s.session(separated2x2(), cur)
	settings := optimize.Settings{DeltaCandidates: []int{300}, SelecCandidates: []float64{0.5, 1.5}}

	var failed int
	opt := optimize.New(optimize.WithObserver(func(c optimize.Candidate) {
		if c.Err != nil {
			s.ErrorIs(c.Err, pipeline.ErrInvalidParams)
			s.True(math.IsNaN(c.Score))
			failed++
		}
	}))
	res, err := opt.Optimize(s.ctx, sess, settings)
	s.Require().NoError(err)

	// Grid {5,300}×{0.5,1.5}: (5,0.5) is the live pair, the other three fail.
	s.Equal(optimize.Stats{Planned: 4, Skipped: 1, Failed: 3}, res.Stats)
	s.Equal(3, failed)
	s.Equal(cur, sess.Params())
	s.Empty(cmp.Diff(res.Original, res.Optimized))
}

func (s *OptimizerSuite) TestFinalApplyFailureRollsBack() {
	start := pipeline.Params{Delta: 200, Selec: 0.5}
	inner := s.session(separated2x2(), start)
	sess := &flakySession{Session: inner, fail: func(_ int, p pipeline.Params) error {
		if p != start {
			return errInjected
		}
		return nil
	}}
	settings := optimize.Settings{DeltaCandidates: []int{5}, SelecCandidates: []float64{0.5}}

	_, err := s.opt.Optimize(s.ctx, sess, settings)
	s.ErrorIs(err, optimize.ErrFinalApply)
	s.ErrorIs(err, errInjected)
	s.NotErrorIs(err, optimize.ErrRollback)
	s.Equal(start, inner.Params())
	s.Equal(3, sess.calls, "original, final, rollback")

	live, ok := inner.Result()
	s.True(ok)
	s.Equal(start, live.Params)
}

func (s *OptimizerSuite) TestRollbackFailureStillLeavesOriginal() {
	start := pipeline.Params{Delta: 200, Selec: 0.5}
	inner := s.session(separated2x2(), start)
	sess := &flakySession{Session: inner, fail: func(call int, _ pipeline.Params) error {
		if call > 1 {
			return errInjected
		}
		return nil
	}}
	settings := optimize.Settings{DeltaCandidates: []int{5}, SelecCandidates: []float64{0.5}}

	_, err := s.opt.Optimize(s.ctx, sess, settings)
	s.ErrorIs(err, optimize.ErrFinalApply)
	s.ErrorIs(err, optimize.ErrRollback)
	s.Equal(start, inner.Params())
}

func (s *OptimizerSuite) TestOriginalRunFailure() {
	inner := s.session(separated2x2(), pipeline.DefaultParams)
	sess := &flakySession{Session: inner, fail: func(int, pipeline.Params) error { return errInjected }}

	_, err := s.opt.Optimize(s.ctx, sess, optimize.Settings{})
	s.ErrorIs(err, optimize.ErrPipeline)
	s.ErrorIs(err, errInjected)
	s.Equal(1, sess.calls)
	_, ok := inner.Result()
	s.False(ok)
}

func (s *OptimizerSuite) TestInsufficientInput() {
	one, _ := matrix.CubeFrom([][][]float64{{{1, 2}, {3, 4}}})
	sess := s.session(one, pipeline.DefaultParams)

	_, err := s.opt.Optimize(s.ctx, sess, optimize.DefaultSettings(pipeline.DefaultParams))
	s.ErrorIs(err, optimize.ErrInsufficientInput)
	_, ok := sess.Result()
	s.False(ok, "nothing was run")

	_, err = s.opt.Optimize(s.ctx, pipeline.NewSession(), optimize.Settings{})
	s.ErrorIs(err, optimize.ErrInsufficientInput)
	_, err = s.opt.Optimize(s.ctx, nil, optimize.Settings{})
	s.ErrorIs(err, optimize.ErrInsufficientInput)
}

func (s *OptimizerSuite) TestInvalidTolerance() {
	sess := s.session(separated2x2(), pipeline.DefaultParams)
	_, err := s.opt.Optimize(s.ctx, sess, optimize.Settings{Tolerance: -1})
	s.ErrorIs(err, optimize.ErrInvalidSettings)
}

func (s *OptimizerSuite) TestCancellation() {
	start := pipeline.Params{Delta: 200, Selec: 0.5}
	sess := s.session(separated2x2(), start)
	ctx, cancel := context.WithCancel(s.ctx)

	// The first candidate is accepted, then the sweep is cancelled.
	opt := optimize.New(optimize.WithObserver(func(optimize.Candidate) { cancel() }))
	settings := optimize.Settings{DeltaCandidates: []int{5, 6, 7}, SelecCandidates: []float64{0.5}}
	_, err := opt.Optimize(ctx, sess, settings)
	s.ErrorIs(err, context.Canceled)
	s.Equal(start, sess.Params())

	_, err = s.opt.Optimize(ctx, sess, settings)
	s.ErrorIs(err, context.Canceled)
	s.Equal(start, sess.Params())
}

func TestOptimizerSuite(t *testing.T) {
	suite.Run(t, new(OptimizerSuite))
}
