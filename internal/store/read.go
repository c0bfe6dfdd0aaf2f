package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrRunNotFound is returned by GetRun for an unknown run ID.
var ErrRunNotFound = errors.New("run not found")

// GetRun fetches a single recorded run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, scenario, input_kind, input_text, snapshot, created_at
		FROM runs
		WHERE id = ?
	`, id)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return r, nil
}

// ListRuns returns all recorded runs ordered by creation time, then ID.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, scenario, input_kind, input_text, snapshot, created_at
		FROM runs
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var r Run
	var snapshot string
	if err := row.Scan(&r.ID, &r.Scenario, &r.InputKind, &r.InputText, &snapshot, &r.CreatedAt); err != nil {
		return nil, err
	}
	r.Snapshot = []byte(snapshot)
	return &r, nil
}
