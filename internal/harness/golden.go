package harness

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/bigcast/coerce"
)

// Snapshot captures every view of an input in the fixed snapshot order.
// The JSON rendering is deterministic, so snapshots can be compared
// byte-for-byte across runs and processes.
type Snapshot struct {
	Scenario string       `json:"scenario,omitempty"`
	Input    InputSummary `json:"input"`
	Views    []View       `json:"views"`
}

// View is one rendered coercion view.
type View struct {
	Op  string `json:"op"`
	Out string `json:"out"`
}

// Views renders every snapshot op of n in snapshot order.
func Views(n coerce.Int) []View {
	views := make([]View, 0, len(snapshotOps))
	for _, op := range snapshotOps {
		out, err := renderOp(n, Check{Op: op})
		if err != nil {
			// The registry renders every snapshot op; a failure here is
			// a programming error.
			panic(fmt.Sprintf("harness: snapshot op %q: %v", op, err))
		}
		views = append(views, View{Op: op, Out: out})
	}
	return views
}

// NewSnapshot builds the snapshot for a scenario's input.
func NewSnapshot(scenario string, n coerce.Int, input InputSummary) *Snapshot {
	return &Snapshot{
		Scenario: scenario,
		Input:    input,
		Views:    Views(n),
	}
}

// Marshal renders the snapshot as indented deterministic JSON.
func (s *Snapshot) Marshal() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// RunWithGolden executes a scenario, requires its checks to pass, and
// compares the input's snapshot against a golden file under
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, sc *Scenario) error {
	t.Helper()

	result, err := Run(sc)
	if err != nil {
		return err
	}
	for _, c := range result.Checks {
		if !c.Pass {
			return fmt.Errorf("scenario %q: check %q: got %q, want %q", sc.Name, c.Op, c.Got, c.Want)
		}
	}

	n, input, err := sc.Input()
	if err != nil {
		return err
	}
	data, err := NewSnapshot(sc.Name, n, input).Marshal()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, sc.Name, data)
	return nil
}
