// SPDX-License-Identifier: MIT

package store

import "errors"

var (
	// ErrNotInitialized indicates use of a store before Init.
	ErrNotInitialized = errors.New("store: not initialized")

	// ErrUnknownBackend indicates an unsupported backend name.
	ErrUnknownBackend = errors.New("store: unsupported backend")

	// ErrSQLiteUnavailable indicates a build without the sqlite tag.
	ErrSQLiteUnavailable = errors.New("store: sqlite backend unavailable in this build; rebuild with -tags sqlite")

	// ErrVersionMismatch indicates a payload from another schema version.
	ErrVersionMismatch = errors.New("store: record version mismatch")

	// ErrInvalidRun indicates a run without an ID.
	ErrInvalidRun = errors.New("store: run has no id")
)
