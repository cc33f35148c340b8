// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/kfe/matrix"
	"github.com/katalvlaran/kfe/pipeline"
)

type SessionSuite struct {
	suite.Suite
	Y *matrix.Cube[float64]
	S *pipeline.Session
}

func (s *SessionSuite) SetupTest() {
	s.Y = separatedClasses(s.T())
	s.S = pipeline.NewSession()
	s.Require().NoError(s.S.Load(s.Y))
}

func (s *SessionSuite) TestFreshSession() {
	fresh := pipeline.NewSession()
	s.Equal(pipeline.DefaultParams, fresh.Params())
	s.Zero(fresh.Loaded())
	s.Nil(fresh.Training())
	_, ok := fresh.Result()
	s.False(ok)

	_, err := fresh.Apply(pipeline.DefaultParams)
	s.ErrorIs(err, pipeline.ErrNotLoaded)
	_, err = fresh.Evaluate(pipeline.DefaultParams)
	s.ErrorIs(err, pipeline.ErrNotLoaded)
}

func (s *SessionSuite) TestLoadValidatesAndCopies() {
	s.Equal(2, s.S.Loaded())

	bad, _ := matrix.CubeFrom([][][]float64{{{300}}})
	s.ErrorIs(s.S.Load(bad), matrix.ErrValueRange)
	s.Equal(2, s.S.Loaded(), "failed load keeps the previous matrix")

	s.Require().NoError(s.Y.Set(0, 0, 0, 99))
	v, _ := s.S.Training().At(0, 0, 0)
	s.Equal(10.0, v)

	s.Require().NoError(s.S.Load(nil))
	s.Zero(s.S.Loaded())
}

func (s *SessionSuite) TestEvaluateLeavesLiveStateAlone() {
	before := s.S.Params()
	res, err := s.S.Evaluate(pipeline.Params{Delta: 30, Selec: 0.3})
	s.Require().NoError(err)
	s.Equal(30, res.Params.Delta)
	s.Equal(before, s.S.Params())
	_, ok := s.S.Result()
	s.False(ok)
}

func (s *SessionSuite) TestApplyCommitsOnSuccess() {
	p := pipeline.Params{Delta: 5, Selec: 0.5}
	res, err := s.S.Apply(p)
	s.Require().NoError(err)
	s.Equal(p, s.S.Params())

	got, ok := s.S.Result()
	s.True(ok)
	s.Equal(res, got)
}

func (s *SessionSuite) TestApplyFailureKeepsState() {
	good := pipeline.Params{Delta: 5, Selec: 0.5}
	want, err := s.S.Apply(good)
	s.Require().NoError(err)

	_, err = s.S.Apply(pipeline.Params{Delta: 500, Selec: 0.5})
	s.ErrorIs(err, pipeline.ErrInvalidParams)
	s.Equal(good, s.S.Params())
	got, ok := s.S.Result()
	s.True(ok)
	s.Equal(want, got)
}

func (s *SessionSuite) TestLoadDropsResult() {
	_, err := s.S.Apply(pipeline.DefaultParams)
	s.Require().NoError(err)
	s.Require().NoError(s.S.Load(s.Y))
	_, ok := s.S.Result()
	s.False(ok)
}

func (s *SessionSuite) TestWithRecomputeInjection() {
	boom := errors.New("boom")
	calls := 0
	sess := pipeline.NewSession(
		pipeline.WithParams(pipeline.Params{Delta: 10, Selec: 0.6}),
		pipeline.WithRecompute(func(Y *matrix.Cube[float64], p pipeline.Params) (pipeline.Result, error) {
			calls++
			return pipeline.Result{}, boom
		}),
		pipeline.WithLogger(nil),
	)
	s.Require().NoError(sess.Load(s.Y))

	_, err := sess.Apply(pipeline.DefaultParams)
	s.ErrorIs(err, boom)
	s.Equal(1, calls)
	s.Equal(pipeline.Params{Delta: 10, Selec: 0.6}, sess.Params())

	s.Panics(func() { pipeline.WithRecompute(nil) })
	s.Panics(func() { pipeline.WithParams(pipeline.Params{Delta: -1}) })
}

func (s *SessionSuite) TestConcurrentReadersDuringApply() {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(d int) {
			defer wg.Done()
			_, _ = s.S.Apply(pipeline.Params{Delta: d, Selec: 0.5})
		}(i * 10)
		go func() {
			defer wg.Done()
			_ = s.S.Params()
			_, _ = s.S.Result()
			_ = s.S.Loaded()
		}()
	}
	wg.Wait()
	_, ok := s.S.Result()
	s.True(ok)
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}
