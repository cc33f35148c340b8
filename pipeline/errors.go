// SPDX-License-Identifier: MIT

package pipeline

import "errors"

var (
	// ErrInvalidParams indicates a delta outside [0,MaxDelta] or a selection
	// level outside [0,1].
	ErrInvalidParams = errors.New("pipeline: invalid parameters")

	// ErrNotLoaded indicates that no training matrix has been loaded.
	ErrNotLoaded = errors.New("pipeline: no training matrix loaded")
)
