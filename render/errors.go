// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrNilInput indicates a nil matrix argument.
	ErrNilInput = errors.New("render: nil input")

	// ErrClassRange indicates a class index outside the matrix.
	ErrClassRange = errors.New("render: class index out of range")

	// ErrBadSize indicates a non-positive output size or preview limit.
	ErrBadSize = errors.New("render: invalid size")
)
