// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"math"
)

// MaxDelta is the widest tolerance band that still fits 8-bit intensities.
const MaxDelta = 255

// Params are the two tunable training parameters.
type Params struct {
	Delta int     `json:"delta" yaml:"delta"` // tolerance half-width around the feature mean
	Selec float64 `json:"selec" yaml:"selec"` // selection level for the reference vector
}

// DefaultParams are the parameters a fresh session starts with.
var DefaultParams = Params{Delta: 50, Selec: 0.5}

// Validate reports ErrInvalidParams when p is outside the admissible box.
func (p Params) Validate() error {
	if p.Delta < 0 || p.Delta > MaxDelta {
		return fmt.Errorf("delta %d not in [0,%d]: %w", p.Delta, MaxDelta, ErrInvalidParams)
	}
	if math.IsNaN(p.Selec) || p.Selec < 0 || p.Selec > 1 {
		return fmt.Errorf("selec %g not in [0,1]: %w", p.Selec, ErrInvalidParams)
	}

	return nil
}

// String renders p as "delta=50 selec=0.50".
func (p Params) String() string {
	return fmt.Sprintf("delta=%d selec=%.2f", p.Delta, p.Selec)
}
