package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/bigcast/internal/harness"
	"github.com/roach88/bigcast/internal/store"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Database string

	// IDGen allows overriding the run ID generator (for testing).
	// If nil, defaults to store.UUIDGenerator.
	IDGen store.RunIDGenerator
}

// RunSummary aggregates the results of running scenario files.
type RunSummary struct {
	Passed  bool             `json:"passed"`
	Results []harness.Result `json:"results"`
	RunIDs  []string         `json:"run_ids,omitempty"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return NewRunCommandWithOptions(&RunOptions{RootOptions: rootOpts})
}

// NewRunCommandWithOptions creates the run command with pre-built
// options, letting tests inject a deterministic run ID generator.
func NewRunCommandWithOptions(opts *RunOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>...",
		Short: "Run conformance scenarios",
		Long: `Validate and execute coercion scenario files, evaluating every
check against the engine.

With --db, each scenario's snapshot is recorded so a later process can
replay it and verify the engine is deterministic.

Example:
  bigcast run scenarios/wrap.yaml
  bigcast run --db ./runs.db scenarios/*.yaml`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database for recording runs")

	return cmd
}

func runScenarios(opts *RunOptions, paths []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	configureLogging(opts.RootOptions)
	ctx := context.Background()

	var st *store.Store
	if opts.Database != "" {
		slog.Info("opening database", "path", opts.Database)
		var err error
		st, err = store.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()
	}

	idGen := opts.IDGen
	if idGen == nil {
		idGen = store.UUIDGenerator{}
	}

	summary := RunSummary{Passed: true}
	for _, path := range paths {
		slog.Debug("loading scenario", "path", path)
		sc, err := harness.Load(path)
		if err != nil {
			return WrapExitError(ExitCommandError, "load scenario", err)
		}

		result, err := harness.Run(sc)
		if err != nil {
			return WrapExitError(ExitCommandError, "run scenario", err)
		}
		if !result.Passed {
			summary.Passed = false
		}
		summary.Results = append(summary.Results, *result)

		if st != nil {
			runID, err := recordRun(ctx, st, idGen, sc)
			if err != nil {
				return WrapExitError(ExitCommandError, "record run", err)
			}
			slog.Info("run recorded", "run_id", runID, "scenario", sc.Name)
			summary.RunIDs = append(summary.RunIDs, runID)
		}
	}

	if err := outputRunSummary(formatter, summary); err != nil {
		return err
	}
	if !summary.Passed {
		return NewExitError(ExitFailure, "one or more checks failed")
	}
	return nil
}

// recordRun snapshots the scenario's input and persists it.
func recordRun(ctx context.Context, st *store.Store, idGen store.RunIDGenerator, sc *harness.Scenario) (string, error) {
	n, input, err := sc.Input()
	if err != nil {
		return "", err
	}
	snapshot, err := harness.NewSnapshot(sc.Name, n, input).Marshal()
	if err != nil {
		return "", err
	}

	run := store.Run{
		ID:        idGen.NewRunID(),
		Scenario:  sc.Name,
		InputKind: input.Kind,
		InputText: input.Text,
		Snapshot:  snapshot,
	}
	if err := st.WriteRun(ctx, run); err != nil {
		return "", err
	}
	return run.ID, nil
}

func outputRunSummary(formatter *OutputFormatter, summary RunSummary) error {
	if formatter.IsJSON() {
		return formatter.JSON(summary)
	}

	for _, result := range summary.Results {
		status := "PASS"
		if !result.Passed {
			status = "FAIL"
		}
		formatter.Textf("%s %s (%s %q = %s)\n", status, result.Scenario, result.Input.Kind, result.Input.Text, result.Input.Value)
		for _, c := range result.Checks {
			if c.Pass {
				continue
			}
			formatter.Textf("  %s: got %s, want %s\n", c.Op, c.Got, c.Want)
		}
	}
	for _, id := range summary.RunIDs {
		formatter.Textf("recorded %s\n", id)
	}
	return nil
}

// configureLogging routes slog to stderr, level switched by --verbose.
func configureLogging(opts *RootOptions) {
	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
