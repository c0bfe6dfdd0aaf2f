package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/bigcast/internal/harness"
	"github.com/roach88/bigcast/seed"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed <text>",
		Short: "Encode text into an integer and show its views",
		Long: `Encode text into an arbitrary-precision integer by reading its
UTF-8 bytes big-endian, then show every coercion view of the result.

Example:
  bigcast seed AB
  bigcast seed --format json "hello world"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runSeed(opts *RootOptions, text string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	n, err := seed.Encode(text)
	if err != nil {
		return WrapExitError(ExitCommandError, "encode seed", err)
	}

	snapshot := &harness.Snapshot{
		Input: harness.InputSummary{Kind: "seed", Text: text, Value: n.String()},
		Views: harness.Views(n),
	}
	return outputSnapshot(formatter, snapshot)
}
