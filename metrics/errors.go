// SPDX-License-Identifier: MIT

package metrics

import "errors"

// ErrNilInput indicates a nil code-distance cube or reference grid.
var ErrNilInput = errors.New("metrics: nil input")
