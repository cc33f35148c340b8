// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/kfe/internal/logger"
	"github.com/katalvlaran/kfe/matrix"
)

const component = "pipeline"

// Option configures a Session.
type Option func(*Session)

// WithRecompute replaces the pipeline function. Panics on nil.
func WithRecompute(fn Func) Option {
	if fn == nil {
		panic("pipeline: WithRecompute(nil)")
	}

	return func(s *Session) { s.recompute = fn }
}

// WithParams sets the initial live parameters. Invalid params panic.
func WithParams(p Params) Option {
	if err := p.Validate(); err != nil {
		panic(err.Error())
	}

	return func(s *Session) { s.params = p }
}

// WithLogger sets the session logger; nil keeps the no-op logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Session) { s.log = logger.OrNop(l) }
}

// Session is the live training state: one training matrix, the live Params
// and the last successful Result. All methods are safe for concurrent use.
type Session struct {
	mu sync.RWMutex

	recompute Func
	log       logger.Logger

	training *matrix.Cube[float64]
	params   Params
	result   Result
	ready    bool
}

// NewSession returns an empty session at DefaultParams.
func NewSession(opts ...Option) *Session {
	s := &Session{
		recompute: Recompute,
		log:       logger.Nop(),
		params:    DefaultParams,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load installs a copy of Y as the training matrix and drops the previous
// result. Y must hold finite intensities in [0,255]; Load(nil) clears.
func (s *Session) Load(Y *matrix.Cube[float64]) error {
	var cp *matrix.Cube[float64]
	if Y != nil {
		if err := matrix.ValidateRange(Y, 0, 255); err != nil {
			return fmt.Errorf("Load: %w", err)
		}
		cp = Y.Clone()
	}

	s.mu.Lock()
	s.training = cp
	s.result, s.ready = Result{}, false
	s.mu.Unlock()

	fields := logger.Fields{"classes": 0}
	if cp != nil {
		sh := cp.Shape()
		fields = logger.Fields{"classes": sh.Classes, "features": sh.Rows, "realizations": sh.Cols}
	}
	s.log.Debug(component, "training matrix loaded", fields)

	return nil
}

// Loaded returns the number of classes in the training matrix (0 if none).
func (s *Session) Loaded() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.training == nil {
		return 0
	}

	return s.training.Classes()
}

// Training returns a copy of the loaded training matrix, or nil.
func (s *Session) Training() *matrix.Cube[float64] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.training.Clone()
}

// Params returns the live parameters.
func (s *Session) Params() Params {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.params
}

// Result returns the last successful result and whether one exists.
func (s *Session) Result() (Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.result, s.ready
}

// Evaluate runs the pipeline at p without touching live state.
func (s *Session) Evaluate(p Params) (Result, error) {
	s.mu.RLock()
	Y, fn := s.training, s.recompute
	s.mu.RUnlock()
	if Y == nil {
		return Result{}, fmt.Errorf("Evaluate: %w", ErrNotLoaded)
	}

	res, err := fn(Y, p)
	if err != nil {
		return Result{}, fmt.Errorf("Evaluate(%s): %w", p, err)
	}

	return res, nil
}

// Apply runs the pipeline at p and, on success, commits p and the result.
// On failure live params and result are unchanged.
func (s *Session) Apply(p Params) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.training == nil {
		return Result{}, fmt.Errorf("Apply: %w", ErrNotLoaded)
	}

	res, err := s.recompute(s.training, p)
	if err != nil {
		s.log.Warning(component, "apply failed", logger.Fields{"params": p.String(), "error": err.Error()})
		return Result{}, fmt.Errorf("Apply(%s): %w", p, err)
	}
	s.params, s.result, s.ready = p, res, true
	s.log.Debug(component, "parameters applied", logger.Fields{"delta": p.Delta, "selec": p.Selec})

	return res, nil
}
