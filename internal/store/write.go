package store

import (
	"context"
	"fmt"
)

// Run is one recorded scenario execution.
type Run struct {
	// ID is the run identifier (a UUID in production).
	ID string `json:"id"`

	// Scenario names the scenario that was executed.
	Scenario string `json:"scenario"`

	// InputKind is "value" or "seed".
	InputKind string `json:"input_kind"`

	// InputText is the integer literal or seed text.
	InputText string `json:"input_text"`

	// Snapshot is the deterministic JSON snapshot of every view.
	Snapshot []byte `json:"snapshot"`

	// CreatedAt is set by the database on insert (UTC, RFC 3339).
	CreatedAt string `json:"created_at"`
}

// WriteRun inserts a run record.
// Uses ON CONFLICT(id) DO NOTHING for idempotency; duplicate IDs are
// silently ignored.
func (s *Store) WriteRun(ctx context.Context, r Run) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, scenario, input_kind, input_text, snapshot)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		r.ID,
		r.Scenario,
		r.InputKind,
		r.InputText,
		string(r.Snapshot),
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	return nil
}
