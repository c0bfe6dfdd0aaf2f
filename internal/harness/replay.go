package harness

import (
	"bytes"
	"context"
	"fmt"

	"github.com/roach88/bigcast/internal/store"
)

// ReplayResult reports whether a recorded run reproduced byte-for-byte.
type ReplayResult struct {
	RunID    string `json:"run_id"`
	Scenario string `json:"scenario"`
	Match    bool   `json:"match"`

	// Stored and Fresh carry both snapshots when they diverge,
	// empty otherwise.
	Stored string `json:"stored,omitempty"`
	Fresh  string `json:"fresh,omitempty"`
}

// ReplayRun re-executes a recorded run's input in this process and
// compares the fresh snapshot with the stored one. A mismatch means
// the engine produced different output than the recording process did.
func ReplayRun(ctx context.Context, st *store.Store, id string) (*ReplayResult, error) {
	run, err := st.GetRun(ctx, id)
	if err != nil {
		return nil, err
	}
	return replay(run)
}

// ReplayAll replays every recorded run.
func ReplayAll(ctx context.Context, st *store.Store) ([]ReplayResult, error) {
	runs, err := st.ListRuns(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]ReplayResult, 0, len(runs))
	for i := range runs {
		r, err := replay(&runs[i])
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	return results, nil
}

func replay(run *store.Run) (*ReplayResult, error) {
	sc := &Scenario{Name: run.Scenario}
	switch run.InputKind {
	case "value":
		sc.Value = run.InputText
	case "seed":
		text := run.InputText
		sc.Seed = &text
	default:
		return nil, fmt.Errorf("run %s: unknown input kind %q", run.ID, run.InputKind)
	}

	n, input, err := sc.Input()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", run.ID, err)
	}
	fresh, err := NewSnapshot(run.Scenario, n, input).Marshal()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", run.ID, err)
	}

	result := &ReplayResult{
		RunID:    run.ID,
		Scenario: run.Scenario,
		Match:    bytes.Equal(fresh, run.Snapshot),
	}
	if !result.Match {
		result.Stored = string(run.Snapshot)
		result.Fresh = string(fresh)
	}
	return result, nil
}
