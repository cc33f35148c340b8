// SPDX-License-Identifier: MIT

package refvec

import "errors"

var (
	// ErrNilBinary indicates a nil binary cube.
	ErrNilBinary = errors.New("refvec: binary matrix is nil")

	// ErrSelectionRange indicates a selection level outside [0,1] or NaN.
	ErrSelectionRange = errors.New("refvec: selection level must lie in [0,1]")
)
