// SPDX-License-Identifier: MIT

package kfe

import "errors"

// ErrUnknownCriterion is returned by ParseCriterion for an unrecognized name.
var ErrUnknownCriterion = errors.New("kfe: unknown criterion")
