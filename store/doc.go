// Package store archives optimization runs.
//
// Backends: "memory" (default, process lifetime) and "sqlite" (a single
// file through modernc.org/sqlite, compiled in with -tags sqlite). Records
// are JSON payloads carrying a schema version; a payload written by another
// schema version is refused with ErrVersionMismatch.
package store
