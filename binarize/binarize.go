// SPDX-License-Identifier: MIT

package binarize

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/kfe/matrix"
)

// Result holds the binary cube and the tolerance bounds it was derived from.
type Result struct {
	// Binary is X (m×N×n) with entries in {0,1}.
	Binary *matrix.Cube[uint8]

	// Lower is NDK (m×N): mean − delta per class/feature.
	Lower *matrix.Dense

	// Upper is VDK (m×N): mean + delta per class/feature.
	Upper *matrix.Dense
}

// Binarize builds X, NDK and VDK from the training matrix Y.
//
// Stage 1 (Validate): Y non-nil and finite, delta finite and ≥ 0.
// Stage 2 (Prepare): allocate X and the two bound grids.
// Stage 3 (Execute): per (k,i) compute the fiber mean and admit every
// realization that falls inside the closed band [mean−delta, mean+delta].
//
// Errors:
//   - ErrNilTraining, ErrNegativeDelta.
//   - matrix.ErrNaNInf (wrapped) when Y contains NaN/Inf.
//
// Complexity: O(m·N·n).
func Binarize(Y *matrix.Cube[float64], delta float64) (Result, error) {
	if Y == nil {
		return Result{}, ErrNilTraining
	}
	if delta < 0 || math.IsNaN(delta) || math.IsInf(delta, 0) {
		return Result{}, fmt.Errorf("Binarize(delta=%g): %w", delta, ErrNegativeDelta)
	}
	if err := matrix.ValidateFinite(Y); err != nil {
		return Result{}, fmt.Errorf("Binarize: %w", err)
	}

	s := Y.Shape()
	X, err := matrix.NewCube[uint8](s.Classes, s.Rows, s.Cols)
	if err != nil {
		return Result{}, fmt.Errorf("Binarize: %w", err)
	}
	lower, err := matrix.NewDense(s.Classes, s.Rows)
	if err != nil {
		return Result{}, fmt.Errorf("Binarize: %w", err)
	}
	upper, err := matrix.NewDense(s.Classes, s.Rows)
	if err != nil {
		return Result{}, fmt.Errorf("Binarize: %w", err)
	}

	var (
		k, i, j  int
		mean     float64
		ndk, vdk float64
		fy       []float64
		fx       []uint8
	)
	for k = 0; k < s.Classes; k++ {
		for i = 0; i < s.Rows; i++ {
			// Shape is fixed above, so the fiber lookups cannot fail.
			fy, _ = Y.Fiber(k, i)
			fx, _ = X.Fiber(k, i)

			mean = stat.Mean(fy, nil)
			ndk, vdk = mean-delta, mean+delta
			_ = lower.Set(k, i, ndk)
			_ = upper.Set(k, i, vdk)

			for j = 0; j < s.Cols; j++ {
				if ndk <= fy[j] && fy[j] <= vdk {
					fx[j] = 1
				}
			}
		}
	}

	return Result{Binary: X, Lower: lower, Upper: upper}, nil
}
