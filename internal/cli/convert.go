package cli

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/roach88/bigcast/coerce"
	"github.com/roach88/bigcast/internal/harness"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <integer>",
		Short: "Show every coercion view of an integer",
		Long: `Show every fixed-width, character, and radix view of an
arbitrary-precision integer.

The literal uses base-0 syntax: decimal, or prefixed 0x/0b/0o, with an
optional sign and underscore digit separators.

Example:
  bigcast convert -- -1
  bigcast convert 0xdead_beef
  bigcast convert --format json 18446744073709551615`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runConvert(opts *RootOptions, literal string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	v, ok := new(big.Int).SetString(literal, 0)
	if !ok {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid integer literal %q", literal))
	}
	n, err := coerce.FromBig(v)
	if err != nil {
		return WrapExitError(ExitCommandError, "construct value", err)
	}

	snapshot := &harness.Snapshot{
		Input: harness.InputSummary{Kind: "value", Text: literal, Value: n.String()},
		Views: harness.Views(n),
	}
	return outputSnapshot(formatter, snapshot)
}

func outputSnapshot(formatter *OutputFormatter, snapshot *harness.Snapshot) error {
	if formatter.IsJSON() {
		return formatter.JSON(snapshot)
	}

	formatter.Textf("%s %q = %s\n", snapshot.Input.Kind, snapshot.Input.Text, snapshot.Input.Value)
	for _, view := range snapshot.Views {
		formatter.Textf("  %-10s %s\n", view.Op, view.Out)
	}
	return nil
}
