package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runs.db")
	st, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st, path
}

func TestOpenCreatesDatabase(t *testing.T) {
	_, path := openTemp(t)

	// Reopening the same path is idempotent.
	st2, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st2.Close())
}

func TestWriteAndGetRun(t *testing.T) {
	st, _ := openTemp(t)
	ctx := context.Background()

	run := Run{
		ID:        "run-1",
		Scenario:  "wrap",
		InputKind: "value",
		InputText: "-1",
		Snapshot:  []byte(`{"scenario":"wrap"}`),
	}
	require.NoError(t, st.WriteRun(ctx, run))

	got, err := st.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, run.Scenario, got.Scenario)
	assert.Equal(t, run.InputKind, got.InputKind)
	assert.Equal(t, run.InputText, got.InputText)
	assert.Equal(t, run.Snapshot, got.Snapshot)
	assert.NotEmpty(t, got.CreatedAt)
}

func TestWriteRunIdempotent(t *testing.T) {
	st, _ := openTemp(t)
	ctx := context.Background()

	first := Run{ID: "run-1", Scenario: "a", InputKind: "value", InputText: "1", Snapshot: []byte("one")}
	require.NoError(t, st.WriteRun(ctx, first))

	// Second write with the same ID is silently ignored.
	dup := first
	dup.Snapshot = []byte("two")
	require.NoError(t, st.WriteRun(ctx, dup))

	got, err := st.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), got.Snapshot)
}

func TestWriteRunRejectsUnknownKind(t *testing.T) {
	st, _ := openTemp(t)

	err := st.WriteRun(context.Background(), Run{
		ID:        "run-1",
		Scenario:  "bad",
		InputKind: "telepathy",
		InputText: "1",
		Snapshot:  []byte("{}"),
	})
	require.Error(t, err)
}

func TestGetRunNotFound(t *testing.T) {
	st, _ := openTemp(t)

	_, err := st.GetRun(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestListRunsOrdered(t *testing.T) {
	st, _ := openTemp(t)
	ctx := context.Background()

	for _, id := range []string{"run-b", "run-a", "run-c"} {
		require.NoError(t, st.WriteRun(ctx, Run{
			ID:        id,
			Scenario:  "s",
			InputKind: "seed",
			InputText: "x",
			Snapshot:  []byte("{}"),
		}))
	}

	runs, err := st.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	// Same-timestamp rows fall back to ID order.
	for i := 1; i < len(runs); i++ {
		prev, cur := runs[i-1], runs[i]
		if prev.CreatedAt == cur.CreatedAt {
			assert.Less(t, prev.ID, cur.ID)
		} else {
			assert.Less(t, prev.CreatedAt, cur.CreatedAt)
		}
	}
}

func TestListRunsEmpty(t *testing.T) {
	st, _ := openTemp(t)

	runs, err := st.ListRuns(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestUUIDGenerator(t *testing.T) {
	gen := UUIDGenerator{}

	a := gen.NewRunID()
	b := gen.NewRunID()
	assert.NotEqual(t, a, b)

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
