// SPDX-License-Identifier: MIT

package refvec

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kfe/matrix"
)

const (
	// Majority is the fixed selection level used before the level became a
	// tunable parameter: a feature joins the centroid when most realizations
	// admit it.
	Majority = 0.5

	// DefaultSelection is the selection level used when none is configured.
	DefaultSelection = Majority
)

// Result holds the per-class averages and the derived reference vectors.
type Result struct {
	// Average is AVG (m×N), the fraction of realizations set to 1.
	Average *matrix.Dense

	// Reference is xm (m×N) with entries in {0,1}.
	Reference *matrix.Grid[uint8]
}

// Build computes AVG and xm from the binary cube X.
//
// Errors:
//   - ErrNilBinary, ErrSelectionRange.
//   - matrix.ErrValueRange (wrapped) if X holds non-binary entries.
//
// Complexity: O(m·N·n).
func Build(X *matrix.Cube[uint8], selec float64) (Result, error) {
	if X == nil {
		return Result{}, ErrNilBinary
	}
	if math.IsNaN(selec) || selec < 0 || selec > 1 {
		return Result{}, fmt.Errorf("Build(selec=%g): %w", selec, ErrSelectionRange)
	}
	if err := matrix.ValidateBinary(X); err != nil {
		return Result{}, fmt.Errorf("Build: %w", err)
	}

	avg, err := matrix.FiberMeans(X)
	if err != nil {
		return Result{}, fmt.Errorf("Build: %w", err)
	}
	ref, err := matrix.NewGrid[uint8](avg.Rows(), avg.Cols())
	if err != nil {
		return Result{}, fmt.Errorf("Build: %w", err)
	}

	var k int
	var row []float64
	var bits []uint8
	for k = 0; k < avg.Rows(); k++ {
		row, _ = avg.Row(k)
		bits, _ = ref.Row(k)
		for i, a := range row {
			if a > selec {
				bits[i] = 1
			}
		}
	}

	return Result{Average: avg, Reference: ref}, nil
}
