// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Containers and validators return these sentinels wrapped with the
// operation name; tests check them via errors.Is. Public accessors never panic
// on user-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Callers wrap
// with fmt.Errorf("ctx: %w", ErrX) at their own boundary.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> index -> dimension mismatch -> numeric policy.

var (
	// ErrNilMatrix indicates that a nil container (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadShape is returned when a requested or supplied shape is invalid
	// (non-positive extent, ragged nested slices).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrValueRange signals a finite value outside the admissible interval
	// (e.g. a non-binary entry in a {0,1} cube).
	ErrValueRange = errors.New("matrix: value out of admissible range")
)
