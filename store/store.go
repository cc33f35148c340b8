// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/kfe/report"
)

// CurrentSchemaVersion is stamped on every encoded Run.
const CurrentSchemaVersion = 1

// Run is one archived optimization.
type Run struct {
	ID            string         `json:"id"`
	SchemaVersion int            `json:"schema_version"`
	CreatedAt     time.Time      `json:"created_at"`
	Summary       report.Summary `json:"summary"`
}

// NewRun wraps summary in a Run with a fresh random ID.
func NewRun(summary report.Summary, now time.Time) Run {
	return Run{
		ID:            uuid.NewString(),
		SchemaVersion: CurrentSchemaVersion,
		CreatedAt:     now.UTC(),
		Summary:       summary,
	}
}

// Store persists runs.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	// ListRuns returns up to limit runs, newest first; limit ≤ 0 means all.
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}

// NewStore returns the backend named kind ("" means memory).
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return newSQLiteStore(sqlitePath)
	default:
		return nil, fmt.Errorf("NewStore(%q): %w", kind, ErrUnknownBackend)
	}
}

// CloseIfSupported closes store when the backend holds resources.
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}

	return closer.Close()
}

// EncodeRun serializes run as a versioned JSON payload.
func EncodeRun(run Run) ([]byte, error) {
	if run.ID == "" {
		return nil, ErrInvalidRun
	}
	run.SchemaVersion = CurrentSchemaVersion

	return json.Marshal(run)
}

// DecodeRun parses a payload written by EncodeRun.
func DecodeRun(data []byte) (Run, error) {
	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return Run{}, fmt.Errorf("DecodeRun: %w", err)
	}
	if run.SchemaVersion != CurrentSchemaVersion {
		return Run{}, fmt.Errorf("DecodeRun: schema %d: %w", run.SchemaVersion, ErrVersionMismatch)
	}

	return run, nil
}
