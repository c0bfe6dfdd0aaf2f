package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/roach88/bigcast/internal/harness"
	"github.com/roach88/bigcast/internal/store"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Database string
	RunID    string
}

// ReplaySummary aggregates replay results.
type ReplaySummary struct {
	Deterministic bool                   `json:"deterministic"`
	Results       []harness.ReplayResult `json:"results"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Re-run recorded runs and verify their snapshots",
		Long: `Re-execute recorded runs in this process and compare the fresh
snapshots byte-for-byte with the stored ones. A mismatch means the
engine produced different output than the process that recorded the
run.

Example:
  bigcast replay --db ./runs.db
  bigcast replay --db ./runs.db --run 0191d2a8-...`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "replay a single run by ID")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runReplay(opts *ReplayOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	ctx := context.Background()

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	var results []harness.ReplayResult
	if opts.RunID != "" {
		r, err := harness.ReplayRun(ctx, st, opts.RunID)
		if err != nil {
			return WrapExitError(ExitCommandError, "replay run", err)
		}
		results = []harness.ReplayResult{*r}
	} else {
		results, err = harness.ReplayAll(ctx, st)
		if err != nil {
			return WrapExitError(ExitCommandError, "replay runs", err)
		}
	}

	summary := ReplaySummary{Deterministic: true, Results: results}
	for _, r := range results {
		if !r.Match {
			summary.Deterministic = false
		}
	}

	if formatter.IsJSON() {
		if err := formatter.JSON(summary); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			status := "match"
			if !r.Match {
				status = "MISMATCH"
			}
			formatter.Textf("%s %s (%s)\n", status, r.RunID, r.Scenario)
		}
		formatter.Textf("%d run(s) replayed\n", len(results))
	}

	if !summary.Deterministic {
		return NewExitError(ExitFailure, "replay mismatch: engine output differs from recording")
	}
	return nil
}
