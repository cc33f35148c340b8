// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the per-fiber reductions the pipeline needs (mean over the last
//     axis of a Cube) as deterministic loops over the flat buffer.
//
// Exposed API:
//   - FiberMeans(C) -> Dense k×r   // mean over cols for every (k, i)
//
// Determinism & Performance:
//   - Fixed k→i→j traversal; a single pass over the data, no At/Set overhead.

package matrix

import "fmt"

const opFiberMeans = "FiberMeans"

// FiberMeans averages every (k, i, ·) fiber of C.
// Implementation:
//   - Stage 1: Validate C (non-nil).
//   - Stage 2: Sum each fiber in place over the contiguous last axis.
//   - Stage 3: Scale by 1/cols into a k×r Dense.
//
// Returns:
//   - *Dense: means (k×r).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(k*r*c), Space O(k*r).
func FiberMeans[T Scalar](C *Cube[T]) (*Dense, error) {
	if C == nil {
		return nil, fmt.Errorf("%s: %w", opFiberMeans, ErrNilMatrix)
	}

	out, err := NewDense(C.k, C.r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFiberMeans, err)
	}

	var k, i, j, base int
	var s float64
	inv := 1.0 / float64(C.c)
	for k = 0; k < C.k; k++ {
		for i = 0; i < C.r; i++ {
			s = 0.0
			base = C.offset(k, i)
			for j = 0; j < C.c; j++ {
				s += float64(C.data[base+j])
			}
			out.data[k*C.r+i] = s * inv
		}
	}

	return out, nil
}
