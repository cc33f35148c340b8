// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the shape and numeric checks the
//    pipeline stages run before allocating their outputs.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap once more with the stage name.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameShape ensures two cubes are non-nil and share all three extents.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[A, B Scalar](a *Cube[A], b *Cube[B]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.Shape() != b.Shape() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects any NaN or ±Inf entry.
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: O(k*r*c).
func ValidateFinite(c *Cube[float64]) error {
	if c == nil {
		return validatorErrorf("ValidateFinite", ErrNilMatrix)
	}
	for _, v := range c.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}

// ValidateRange ensures every entry lies in [lo, hi]. NaN fails with ErrNaNInf.
// Errors: ErrNilMatrix, ErrNaNInf, ErrValueRange.
// Complexity: O(k*r*c).
func ValidateRange(c *Cube[float64], lo, hi float64) error {
	if c == nil {
		return validatorErrorf("ValidateRange", ErrNilMatrix)
	}
	for _, v := range c.data {
		if math.IsNaN(v) {
			return validatorErrorf("ValidateRange", ErrNaNInf)
		}
		if v < lo || v > hi {
			return validatorErrorf("ValidateRange", ErrValueRange)
		}
	}

	return nil
}

// ValidateBinary ensures every entry of a binary cube is 0 or 1.
// Errors: ErrNilMatrix, ErrValueRange.
// Complexity: O(k*r*c).
func ValidateBinary(c *Cube[uint8]) error {
	if c == nil {
		return validatorErrorf("ValidateBinary", ErrNilMatrix)
	}
	for _, v := range c.data {
		if v > 1 {
			return validatorErrorf("ValidateBinary", ErrValueRange)
		}
	}

	return nil
}

// ValidateBinaryGrid is ValidateBinary for two-axis data (reference vectors).
// Errors: ErrNilMatrix, ErrValueRange.
// Complexity: O(r*c).
func ValidateBinaryGrid(g *Grid[uint8]) error {
	if g == nil {
		return validatorErrorf("ValidateBinaryGrid", ErrNilMatrix)
	}
	for _, v := range g.data {
		if v > 1 {
			return validatorErrorf("ValidateBinaryGrid", ErrValueRange)
		}
	}

	return nil
}
