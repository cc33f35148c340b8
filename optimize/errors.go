// SPDX-License-Identifier: MIT

package optimize

import "errors"

var (
	// ErrInsufficientInput indicates fewer than two loaded classes.
	ErrInsufficientInput = errors.New("optimize: at least two training classes are required")

	// ErrInvalidSettings indicates a negative or NaN tolerance.
	ErrInvalidSettings = errors.New("optimize: invalid settings")

	// ErrPipeline indicates that the run at the live parameters failed.
	ErrPipeline = errors.New("optimize: pipeline run at live parameters failed")

	// ErrFinalApply indicates that the best pair failed on its confirming run
	// and the original parameters were restored.
	ErrFinalApply = errors.New("optimize: final apply failed, original parameters restored")

	// ErrRollback indicates that restoring the original parameters failed too.
	ErrRollback = errors.New("optimize: rollback failed")
)
