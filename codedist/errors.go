// SPDX-License-Identifier: MIT

package codedist

import "errors"

var (
	// ErrNilInput indicates a nil binary cube or reference grid.
	ErrNilInput = errors.New("codedist: nil input")

	// ErrLengthMismatch indicates two code vectors of different length.
	ErrLengthMismatch = errors.New("codedist: code vectors differ in length")
)
