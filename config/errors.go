// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalidConfig indicates a configuration that fails Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")
