// SPDX-License-Identifier: MIT

package ingest

import "errors"

var (
	// ErrNoImages indicates an empty image list.
	ErrNoImages = errors.New("ingest: no images")

	// ErrBadSize indicates a non-positive target size or an empty image.
	ErrBadSize = errors.New("ingest: invalid size")

	// ErrUnsupportedFormat indicates data no registered decoder accepts.
	ErrUnsupportedFormat = errors.New("ingest: unsupported image format")
)
