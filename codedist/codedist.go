// SPDX-License-Identifier: MIT

package codedist

import (
	"fmt"

	"github.com/katalvlaran/kfe/matrix"
)

// Hamming returns the number of positions where a and b differ.
// Complexity: O(len(a)).
func Hamming(a, b []uint8) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("Hamming(%d,%d): %w", len(a), len(b), ErrLengthMismatch)
	}
	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}

	return d, nil
}

// validate checks that X and ref describe the same classes and features.
func validate(op string, X *matrix.Cube[uint8], ref *matrix.Grid[uint8]) error {
	if X == nil || ref == nil {
		return fmt.Errorf("%s: %w", op, ErrNilInput)
	}
	if ref.Rows() != X.Classes() {
		return fmt.Errorf("%s: %d reference vectors for %d classes: %w", op, ref.Rows(), X.Classes(), matrix.ErrDimensionMismatch)
	}
	if ref.Cols() != X.Rows() {
		return fmt.Errorf("%s: reference length %d for %d features: %w", op, ref.Cols(), X.Rows(), matrix.ErrDimensionMismatch)
	}

	return nil
}

// Compute builds the code-distance cube SK (m×m×n) for binary cube X and
// reference vectors ref (m×N).
//
// Implementation:
//   - Stage 1: Validate shapes (ref rows == classes, ref cols == features).
//   - Stage 2: For every ordered class pair (k, c) walk the features once and
//     accumulate mismatches into the contiguous SK[k,c,·] fiber.
//
// Errors:
//   - ErrNilInput, matrix.ErrDimensionMismatch (wrapped).
//
// Complexity: O(m²·N·n).
func Compute(X *matrix.Cube[uint8], ref *matrix.Grid[uint8]) (*matrix.Cube[int], error) {
	if err := validate("Compute", X, ref); err != nil {
		return nil, err
	}

	s := X.Shape()
	sk, err := matrix.NewCube[int](s.Classes, s.Classes, s.Cols)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}

	var (
		k, c, i, j int
		refRow     []uint8
		xs         []uint8
		dist       []int
		bit        uint8
	)
	for k = 0; k < s.Classes; k++ {
		refRow, _ = ref.Row(k)
		for c = 0; c < s.Classes; c++ {
			dist, _ = sk.Fiber(k, c)
			for i = 0; i < s.Rows; i++ {
				bit = refRow[i]
				xs, _ = X.Fiber(c, i)
				for j = 0; j < s.Cols; j++ {
					if xs[j] != bit {
						dist[j]++
					}
				}
			}
		}
	}

	return sk, nil
}

// ReferenceDistances returns the m×m table of Hamming distances between the
// reference vectors themselves. The diagonal is zero and the table is
// symmetric. Entry (k, c) is the widest meaningful classification radius of
// class k against class c.
//
// Errors:
//   - ErrNilInput.
//
// Complexity: O(m²·N).
func ReferenceDistances(ref *matrix.Grid[uint8]) (*matrix.Grid[int], error) {
	if ref == nil {
		return nil, fmt.Errorf("ReferenceDistances: %w", ErrNilInput)
	}
	m := ref.Rows()
	out, err := matrix.NewGrid[int](m, m)
	if err != nil {
		return nil, fmt.Errorf("ReferenceDistances: %w", err)
	}

	var a, b []uint8
	var d int
	for k := 0; k < m; k++ {
		a, _ = ref.Row(k)
		for c := k + 1; c < m; c++ {
			b, _ = ref.Row(c)
			d, _ = Hamming(a, b) // rows of one grid share a length
			_ = out.Set(k, c, d)
			_ = out.Set(c, k, d)
		}
	}

	return out, nil
}
