// SPDX-License-Identifier: MIT

package binarize

import "errors"

var (
	// ErrNilTraining indicates a nil training matrix.
	ErrNilTraining = errors.New("binarize: training matrix is nil")

	// ErrNegativeDelta indicates a negative or non-finite tolerance width.
	ErrNegativeDelta = errors.New("binarize: delta must be finite and >= 0")
)
