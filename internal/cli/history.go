package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/roach88/bigcast/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
}

// HistoryEntry is the listing view of a recorded run.
type HistoryEntry struct {
	RunID     string `json:"run_id"`
	Scenario  string `json:"scenario"`
	InputKind string `json:"input_kind"`
	InputText string `json:"input_text"`
	CreatedAt string `json:"created_at"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Long: `List runs recorded by "run --db" in creation order.

Example:
  bigcast history --db ./runs.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	ctx := context.Background()

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	runs, err := st.ListRuns(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "list runs", err)
	}

	entries := make([]HistoryEntry, 0, len(runs))
	for _, r := range runs {
		entries = append(entries, HistoryEntry{
			RunID:     r.ID,
			Scenario:  r.Scenario,
			InputKind: r.InputKind,
			InputText: r.InputText,
			CreatedAt: r.CreatedAt,
		})
	}

	if formatter.IsJSON() {
		return formatter.JSON(entries)
	}

	for _, e := range entries {
		formatter.Textf("%s  %s  %s %q  %s\n", e.RunID, e.Scenario, e.InputKind, e.InputText, e.CreatedAt)
	}
	formatter.Textf("%d run(s)\n", len(entries))
	return nil
}
