package harness

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bigcast/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func recordScenario(t *testing.T, st *store.Store, id string, sc *Scenario) {
	t.Helper()
	n, input, err := sc.Input()
	require.NoError(t, err)
	snapshot, err := NewSnapshot(sc.Name, n, input).Marshal()
	require.NoError(t, err)

	require.NoError(t, st.WriteRun(context.Background(), store.Run{
		ID:        id,
		Scenario:  sc.Name,
		InputKind: input.Kind,
		InputText: input.Text,
		Snapshot:  snapshot,
	}))
}

func TestReplayAllMatches(t *testing.T) {
	st := openTestStore(t)
	text := "hello"

	recordScenario(t, st, "run-1", &Scenario{Name: "neg", Value: "-42"})
	recordScenario(t, st, "run-2", &Scenario{Name: "seeded", Seed: &text})

	results, err := ReplayAll(context.Background(), st)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, r.Match, "run %s", r.RunID)
		assert.Empty(t, r.Stored)
		assert.Empty(t, r.Fresh)
	}
}

func TestReplayRunByID(t *testing.T) {
	st := openTestStore(t)
	recordScenario(t, st, "run-1", &Scenario{Name: "one", Value: "1"})

	r, err := ReplayRun(context.Background(), st, "run-1")
	require.NoError(t, err)
	assert.True(t, r.Match)
	assert.Equal(t, "one", r.Scenario)
}

func TestReplayDetectsDivergence(t *testing.T) {
	st := openTestStore(t)

	// A snapshot no fresh execution can reproduce.
	require.NoError(t, st.WriteRun(context.Background(), store.Run{
		ID:        "run-bad",
		Scenario:  "tampered",
		InputKind: "value",
		InputText: "7",
		Snapshot:  []byte(`{"scenario":"tampered","tampered":true}`),
	}))

	r, err := ReplayRun(context.Background(), st, "run-bad")
	require.NoError(t, err)
	assert.False(t, r.Match)
	assert.NotEmpty(t, r.Stored)
	assert.NotEmpty(t, r.Fresh)
	assert.NotEqual(t, r.Stored, r.Fresh)
}

func TestReplayUnknownRun(t *testing.T) {
	st := openTestStore(t)

	_, err := ReplayRun(context.Background(), st, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}
