// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kfe/codedist"
	"github.com/katalvlaran/kfe/matrix"
)

// Compute derives the per-class, per-radius accuracy records from the
// code-distance cube sk (m×m×n) and the reference vectors ref (m×N).
//
// Implementation:
//   - Stage 1: Validate (square in the class axes, ref rows == classes).
//   - Stage 2: Reference-to-reference distances give maxRadius per class.
//   - Stage 3: Histogram SK[k,k,·] and Σ_{c≠k} SK[k,c,·] by distance once,
//     then sweep radii with running prefix sums, so K1 and K3 are
//     non-decreasing in the radius by construction.
//
// Behavior highlights:
//   - The sample size is the realization axis of sk (n), never the feature count.
//   - maxRadius < 1 (identical reference vectors, or a single class) yields an
//     empty list for that class.
//
// Errors:
//   - ErrNilInput; matrix.ErrDimensionMismatch (wrapped).
//
// Complexity:
//   - Time O(m²·n + m·N), Space O(N) per class.
func Compute(sk *matrix.Cube[int], ref *matrix.Grid[uint8]) (Report, error) {
	if sk == nil || ref == nil {
		return Report{}, fmt.Errorf("Compute: %w", ErrNilInput)
	}
	m, n := sk.Classes(), sk.Cols()
	if sk.Rows() != m {
		return Report{}, fmt.Errorf("Compute: code-distance cube is %dx%d in class axes: %w", m, sk.Rows(), matrix.ErrDimensionMismatch)
	}
	if ref.Rows() != m {
		return Report{}, fmt.Errorf("Compute: %d reference vectors for %d classes: %w", ref.Rows(), m, matrix.ErrDimensionMismatch)
	}

	sep, err := codedist.ReferenceDistances(ref)
	if err != nil {
		return Report{}, fmt.Errorf("Compute: %w", err)
	}

	features := ref.Cols()
	report := Report{
		ByClass:    make([][]RadiusMetric, m),
		MaxRadius:  make([]int, m),
		Separation: sep,
	}

	var (
		k, c     int
		own      = make([]int, features+1) // own[d]: own realizations at distance d
		foreign  = make([]int, features+1) // foreign[d]: foreign realizations at distance d
		fiber    []int
		foreignN = n * (m - 1)
	)
	for k = 0; k < m; k++ {
		maxRadius := nearestForeign(sep, k)
		report.MaxRadius[k] = maxRadius
		if maxRadius < 1 {
			report.ByClass[k] = []RadiusMetric{}
			continue
		}

		clear(own)
		clear(foreign)
		for c = 0; c < m; c++ {
			fiber, _ = sk.Fiber(k, c)
			for _, d := range fiber {
				if d < 0 || d > features {
					return Report{}, fmt.Errorf("Compute: SK[%d,%d] holds distance %d outside [0,%d]: %w", k, c, d, features, matrix.ErrValueRange)
				}
				if c == k {
					own[d]++
				} else {
					foreign[d]++
				}
			}
		}

		list := make([]RadiusMetric, 0, maxRadius)
		k1, k3 := own[0], foreign[0]
		for r := 1; r <= maxRadius; r++ {
			k1 += own[r]
			k3 += foreign[r]
			list = append(list, newRadiusMetric(k, r, k1, k3, n, foreignN))
		}
		report.ByClass[k] = list
	}

	return report, nil
}

// nearestForeign returns the smallest distance from class k to any other
// class, or 0 when k is the only class.
func nearestForeign(sep *matrix.Grid[int], k int) int {
	best := -1
	row, _ := sep.Row(k)
	for c, d := range row {
		if c == k {
			continue
		}
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0
	}

	return best
}

// newRadiusMetric assembles one record from the raw hit counts.
func newRadiusMetric(class, radius, k1, k3, n, foreignN int) RadiusMetric {
	k2 := n - k1
	k4 := foreignN - k3
	size, fsize := float64(n), float64(foreignN)

	d1 := float64(k1) / size
	d2 := float64(k4) / fsize

	return RadiusMetric{
		Radius:            radius,
		Class:             class,
		D1:                d1,
		Alpha:             float64(k2) / size,
		Beta:              float64(k3) / fsize,
		D2:                d2,
		K1:                k1,
		K2:                k2,
		K3:                k3,
		K4:                k4,
		SampleSize:        n,
		ForeignSampleSize: foreignN,
		Reliable:          IsReliable(d1, d2),
		Shannon:           math.NaN(),
		Kullback:          math.NaN(),
	}
}
